/*
Package marks loads racing-mark records from a JSON file.

The input is a JSON array of objects. Each object is kept as an open-ended,
key-ordered mapping; no schema is enforced here. Interpreting the fields
(MarkName, Latitude, IconURL, ...) is the job of the converter package.

	records, err := marks.Load("marks2.json")
	if errors.Is(err, marks.ErrInputNotFound) {
	    // report and exit
	}
	for _, rec := range records {
	    name, _ := rec.Value("MarkName")
	    ...
	}

A file that is not valid JSON, or whose top-level value is not an array, fails
with ErrInputParse. A single array element that is not an object does not fail
the load: it becomes a Record whose Err method reports the problem, so the
caller can skip it and carry on.
*/
package marks
