package utcoffset

import "context"

// Resolver produces a best-effort Offset and keeps Cache populated.
type Resolver struct {
	Cache     *Cache
	Sources   []Source
	Formatter Formatter
}

// NewResolver returns a Resolver over cache. DefaultSources is used when
// no sources are given.
func NewResolver(cache *Cache, sources ...Source) *Resolver {
	if len(sources) == 0 {
		sources = DefaultSources()
	}

	return &Resolver{Cache: cache, Sources: sources}
}

// Resolve returns the cached offset, or walks Sources in order and caches
// the first offset found. UTC is used when every source fails.
//
// Resolve never fails. Source failures and a busy cache are returned as
// soft errors alongside the offset.
func (r *Resolver) Resolve(ctx context.Context) (Offset, Errors) {
	var errs Errors

	if o, err := r.Cache.Get(); err == nil {
		return o, errs
	}

	o := UTC

	for _, s := range r.Sources {
		found, err := s.Offset(ctx)
		if err != nil {
			errs.push(err)

			continue
		}

		o = found

		break
	}

	if err := r.Cache.TrySet(o); err != nil {
		errs.push(err)
	}

	return o, errs
}

// LocalTimestamp resolves the offset and renders the current time with it.
// Only rendering failures are returned as err.
func (r *Resolver) LocalTimestamp(ctx context.Context) (string, Errors, error) {
	o, errs := r.Resolve(ctx)

	ts, err := r.Formatter.FormatNow(o)
	if err != nil {
		return "", errs, err
	}

	return ts, errs, nil
}
