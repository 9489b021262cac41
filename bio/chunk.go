package bio

// Chunk is a contiguous entity span over token positions [Start, End).
type Chunk struct {
	Start int
	End   int
	Label string
}

// ChunksFromTags converts a BIO tag sequence into entity spans. Malformed
// sequences are recovered rather than rejected: an Inside tag whose label
// differs from the open span (or that follows O) starts a new span, and a
// span still open at the end of the sequence is closed there.
func ChunksFromTags(tags []string) []Chunk {
	var chunks []Chunk
	start := -1
	label := ""
	for i, tag := range tags {
		switch {
		case IsBegin(tag):
			if label != "" {
				chunks = append(chunks, Chunk{start, i, label})
			}
			label = Label(tag)
			start = i
		case IsInside(tag):
			if l := Label(tag); l != label {
				if label != "" {
					chunks = append(chunks, Chunk{start, i, label})
				}
				label = l
				start = i
			}
		default:
			if label != "" {
				chunks = append(chunks, Chunk{start, i, label})
			}
			label = ""
		}
	}
	if label != "" {
		chunks = append(chunks, Chunk{start, len(tags), label})
	}
	return chunks
}

// TagsFromChunks renders entity spans as a BIO tag sequence of length n.
// Positions covered by no chunk are tagged O; where chunks overlap, the
// earliest chunk in the slice wins.
func TagsFromChunks(chunks []Chunk, n int) []string {
	tags := make([]string, n)
	for i := range tags {
		tags[i] = "O"
		for _, c := range chunks {
			if c.Start <= i && i < c.End {
				if i == c.Start {
					tags[i] = "B-" + c.Label
				} else {
					tags[i] = "I-" + c.Label
				}
				break
			}
		}
	}
	return tags
}
