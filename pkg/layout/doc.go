// Package layout computes node positions. Layouts run incrementally:
// the host calls Step once per frame until it returns false, so a
// simulation can animate while the user keeps interacting with the
// graph. Nodes flagged as dragged are left where the user holds them.
package layout
