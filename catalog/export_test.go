package catalog

// SetLoader replaces the function File uses to read its catalog.
func (f *File) SetLoader(load func(path, format string) (*Catalog, error)) {
	f.load = load
}
