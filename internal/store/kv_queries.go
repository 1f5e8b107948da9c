package store

import sq "github.com/Masterminds/squirrel"

const (
	kvTable = "kv_entries"

	kvColumnKey       = "key"
	kvColumnValue     = "value"
	kvColumnUpdatedAt = "updated_at"

	kvUpsertSuffix = "ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

// sqlite uses '?' placeholders, which is squirrel's default.
var kvBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
