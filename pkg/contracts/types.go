package contracts

// TableNamesOptions controls a single TableNames call. The zero value lists
// from the beginning at the server's default page size.
type TableNamesOptions struct {
	// Limit caps how many names the server returns. Unset sends no limit.
	Limit *int

	// StartAfter resumes listing after this position, exclusive. Any name
	// from a previous page is a valid position.
	StartAfter *string
}

// TableNamesOption adjusts one TableNames call.
type TableNamesOption func(*TableNamesOptions)

// WithLimit caps the number of names returned by one TableNames call.
func WithLimit(n int) TableNamesOption {
	return func(o *TableNamesOptions) { o.Limit = &n }
}

// WithStartAfter resumes a listing after the given position. Passing the
// last name of the previous page fetches the next one.
func WithStartAfter(token string) TableNamesOption {
	return func(o *TableNamesOptions) { o.StartAfter = &token }
}

// OpenTableOptions controls a single OpenTable call.
type OpenTableOptions struct {
	// StorageOptions are per-table storage hints. The remote backend
	// accepts them so callers can switch backends without changing call
	// sites; they do not alter the request it sends.
	StorageOptions map[string]string
}

// OpenTableOption adjusts one OpenTable call.
type OpenTableOption func(*OpenTableOptions)

// WithStorageOption attaches one storage hint to an OpenTable call.
func WithStorageOption(key, value string) OpenTableOption {
	return func(o *OpenTableOptions) {
		if o.StorageOptions == nil {
			o.StorageOptions = make(map[string]string)
		}
		o.StorageOptions[key] = value
	}
}
