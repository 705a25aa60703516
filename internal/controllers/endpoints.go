package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Endpoint holds the HTTP method and path template of one API operation.
// Path segments of the form {name} are substituted by Path.
type Endpoint struct {
	Name   string
	Method string
	Route  string
}

// Path fills the route template with url-escaped values, in order.
func (e Endpoint) Path(values ...string) (string, error) {
	p := e.Route
	for _, v := range values {
		start := strings.IndexByte(p, '{')
		end := strings.IndexByte(p, '}')
		if start < 0 || end < start {
			return "", fmt.Errorf("%s: too many path values", e.Name)
		}
		if v == "" {
			return "", fmt.Errorf("%s: empty %s", e.Name, p[start+1:end])
		}
		p = p[:start] + url.PathEscape(v) + p[end+1:]
	}
	if strings.ContainsRune(p, '{') {
		return "", fmt.Errorf("%s: missing path values", e.Name)
	}
	return p, nil
}

// Endpoints maps operation names to their v2 routes.
var Endpoints = map[string]Endpoint{
	"GetTweet":                   {Name: "GetTweet", Method: http.MethodGet, Route: "/2/tweets/{id}"},
	"GetTweets":                  {Name: "GetTweets", Method: http.MethodGet, Route: "/2/tweets"},
	"ChangeTweetReplyVisibility": {Name: "ChangeTweetReplyVisibility", Method: http.MethodPut, Route: "/2/tweets/{id}/hidden"},
	"PublishTweet":               {Name: "PublishTweet", Method: http.MethodPost, Route: "/2/tweets"},
}
