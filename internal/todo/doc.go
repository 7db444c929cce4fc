// Package todo holds the in-memory to-do list state and the seed file format.
//
// A List owns an ordered collection of items plus the pending input buffer
// used to create new ones:
//
//	l := todo.NewList(todo.WithDeleteNotifier(func(id string) { ... }))
//	l.SetPendingInput("buy milk")
//	l.AddItem(l.PendingInput()) // appends {id: "1", value: "buy milk"}
//	l.ToggleItem("1")
//	l.DeleteItem("1")           // only removes items marked done
//
// Every operation is total. An unknown id is absorbed as a no-op and the
// boolean result reports whether the collection changed.
//
// # Seed File Format
//
// Seed data uses the same shape as the remote data source. Seed files may
// also carry // and /* */ comments and trailing commas:
//
//	{
//	  "data": [
//	    {"id": "1", "value": "buy tea", "isDone": true},
//	    {"id": "2", "value": "buy coffee", "isDone": false}
//	  ]
//	}
//
// Seed files are validated against an embedded JSON Schema unless another
// schema path is given. When the schema cannot be compiled the package falls
// back to minimal structural checks.
//
// # Identifiers
//
// Item ids are produced by an IDGenerator. The default SequenceIDs never
// reuses an id that was handed out before, even after deletions.
package todo
