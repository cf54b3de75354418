package mp3

import (
	"fmt"

	"github.com/simonhull/id3edit/internal/types"
)

// Splice returns newTag followed by the audio of original, dropping the
// tag described by existing. If newTag is empty, original is returned
// unchanged. The audio bytes are copied as-is and never inspected.
func Splice(original, newTag []byte, existing Header) ([]byte, error) {
	if len(newTag) == 0 {
		return original, nil
	}

	start := existing.End()
	if start > len(original) {
		return nil, &types.MalformedFrameError{
			Offset: 0,
			Reason: fmt.Sprintf("tag ends at %d but file is %d bytes", start, len(original)),
		}
	}

	out := make([]byte, 0, len(newTag)+len(original)-start)
	out = append(out, newTag...)
	return append(out, original[start:]...), nil
}
