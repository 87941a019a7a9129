package output

// SchemaVersion is the current version of the NDJSON console schema.
// Increment this when making breaking changes to the output format.
// Persisted artifacts are not versioned.
const SchemaVersion = 1
