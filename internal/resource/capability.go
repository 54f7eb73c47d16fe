// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

// LookupSupport tells whether a data source can serve batched lookups.
type LookupSupport int

const (
	LookupUnsupported LookupSupport = iota
	LookupSupported
)

func (s LookupSupport) String() string {
	if s == LookupSupported {
		return "supported"
	}
	return "unsupported"
}

// ProbeBatchLookup reports whether ds implements [BatchLookup]. The returned
// lookup is nil when support is [LookupUnsupported].
func ProbeBatchLookup(ds DataSource) (BatchLookup, LookupSupport) {
	if bl, ok := ds.(BatchLookup); ok {
		return bl, LookupSupported
	}
	return nil, LookupUnsupported
}
