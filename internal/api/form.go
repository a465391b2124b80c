package api

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/mesh-intelligence/curbside/internal/rest"
	"github.com/mesh-intelligence/curbside/pkg/types"
)

// maxFormMemory bounds how much of a multipart form is held in memory
// before spilling to temporary files.
const maxFormMemory = 32 << 20

// parseNewReport reads the multipart form of r and validates the required
// description field. It also returns the number of file parts carrying an
// image MIME type; uploads are validated but never persisted.
func parseNewReport(r *http.Request) (types.NewReport, int, rest.Error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return types.NewReport{}, 0, &rest.BadRequest{Errors: []string{"Failed to parse form data"}}
	}

	values := r.MultipartForm.Value["description"]
	if len(values) == 0 || values[0] == "" {
		return types.NewReport{}, 0, &rest.BadRequest{Errors: []string{"description must be a non-empty string"}}
	}

	return types.NewReport{Description: values[0]}, imageCount(r.MultipartForm), nil
}

// imageCount counts the uploaded file parts whose MIME type contains
// "image". Parts of any other type are ignored entirely.
func imageCount(form *multipart.Form) int {
	count := 0
	for _, headers := range form.File {
		for _, h := range headers {
			if strings.Contains(h.Header.Get("Content-Type"), "image") {
				count++
			}
		}
	}
	return count
}
