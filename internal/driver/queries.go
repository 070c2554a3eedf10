package driver

// IndexQueries are run once at startup.
var IndexQueries = []string{
	"CREATE INDEX ON :KGState(key);",
}

const (
	// SaveStateQuery upserts one persisted session value.
	SaveStateQuery = `
		MERGE (s:KGState {key: $key})
		SET s.value = $value,
			s.updated_at = $updated_at
		RETURN s.key AS key
	`

	GetStateQuery = `
		MATCH (s:KGState {key: $key})
		RETURN s.value AS value
	`
)
