// Copyright 2024 Fantom Foundation
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package visualizer

import (
	"fmt"
	"html"
	"net/http"
	"strings"
)

// indexHtml is the index page; LINKS is replaced by one entry per chart.
const indexHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>TITLE</title>
  </head>
  <body>
    <h1>TITLE</h1>
    <ul>
LINKS    </ul>
</body>
</html>
`

// renderIndex renders the main menu.
func renderIndex(title string) string {
	var links strings.Builder
	for _, kind := range Kinds {
		fmt.Fprintf(&links, "    <li> <h3> <a href=\"/%s\"> %s </a> </h3> </li>\n", kind, kind)
	}
	fmt.Fprintf(&links, "    <li> <h3> <a href=\"/%s\"> all charts </a> </h3> </li>\n", All)
	page := strings.Replace(indexHtml, "LINKS", links.String(), 1)
	return strings.Replace(page, "TITLE", html.EscapeString(title), -1)
}

// NewHandler serves the index page and one page per chart of a sorted sample.
// The handler keeps its own copy of the sample.
func NewHandler(sample []float64, o Options) http.Handler {
	data := append([]float64(nil), sample...)
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, renderIndex(o.Title))
	})
	for _, kind := range append(Kinds, All) {
		kind := kind
		mux.HandleFunc("/"+string(kind), func(w http.ResponseWriter, r *http.Request) {
			if err := Render(w, kind, data, o); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		})
	}
	return mux
}

// FireUpWeb fires up a new web-server for data visualisation.
func FireUpWeb(port string, sample []float64, o Options) error {
	return http.ListenAndServe(":"+port, NewHandler(sample, o))
}
