package export

import (
	"encoding/json"
	"io"

	"github.com/soc-tools/testudo/internal/catalog"
)

// WriteJSON writes the full nested course structure as indented JSON. A
// course with no section block serializes with "sections": null; a course
// whose block held no parsable sections serializes with "sections": [].
func WriteJSON(w io.Writer, courses []catalog.Course) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(courses)
}
