package common

// UnknownStr is returned by String methods for values outside their enum.
const UnknownStr = "unknown"

// Chunk splits s into consecutive pieces of size n. A trailing piece shorter
// than n is dropped and reported through the second result.
func Chunk[S ~[]E, E any](s S, n int) (chunks []S, rest S) {
	if n <= 0 {
		return nil, s
	}

	for len(s) >= n {
		chunks = append(chunks, s[:n:n])
		s = s[n:]
	}

	return chunks, s
}
