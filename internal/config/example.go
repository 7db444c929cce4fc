package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# todolist configuration file
# Values can be overridden by environment variables (TODOLIST_*) or CLI flags

# Seed data file (relative to the working directory)
seed_file = "todo-seed.json"

# Fetch seed data from a URL instead of a file; the response must be
# {"data": [{"id": "1", "value": "buy tea", "isDone": false}]}
# seed_url = "http://127.0.0.1:8080/data"

# Schema used by "todolist validate" (default: built-in schema)
# schema_file = "todo-seed.schema.json"

# Seed fetch timeout in seconds (0 = no limit)
fetch_timeout_seconds = 10

# Item id scheme: sequence, uuid, or length
id_scheme = "sequence"

# Command run as "<hook> delete <id>" after an item is deleted
# hook_command = "/path/to/on-delete.sh"

# Listen address for "todolist serve"
serve_addr = "127.0.0.1:8080"

# Logging (log_dir supports ~ expansion and %VAR% on Windows)
log_dir = "~/.todolist"
log_file = "todolist.log"
log_level = "info"
log_format = "text"
log_timestamps = false
log_caller = false
`
}
