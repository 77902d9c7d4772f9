package provider

import (
	"fmt"
	neturl "net/url"
	"unicode/utf8"
)

// withQuery returns the endpoint with the given query parameters added to its own ones
func withQuery(endpoint string, params map[string]string) (string, error) {
	u, err := neturl.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// preview returns the first n characters of the body, or the whole body if it is shorter
func preview(body []byte, n int) string {
	s := string(body)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
