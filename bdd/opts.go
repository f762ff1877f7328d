package bdd

type mgrOpts struct {
	noCache bool
}

type Option func(*mgrOpts)

// NoCache disables the operation result caches.  Construction then does
// strictly structural work: same tables, same Refs, more recursion.
func NoCache() Option {
	return func(o *mgrOpts) { o.noCache = true }
}
