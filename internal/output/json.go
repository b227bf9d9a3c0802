// internal/output/json.go
package output

import (
	"io"

	"primedesign-core/design"
	"primedesign/internal/jsonutil"
)

// WriteJSON prints the result in the stable v1 schema.
func WriteJSON(w io.Writer, res *design.Result) error {
	return jsonutil.EncodePretty(w, FromResult(res))
}
