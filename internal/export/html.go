package export

import (
	"bytes"
	"html/template"

	"github.com/Horopapera/Mind-Map-generator/internal/outline"
)

var htmlTmpl = template.Must(template.New("mindmap").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font: 15px/1.5 sans-serif; margin: 2rem; color: #0f172a; }
ul { list-style: none; padding-left: 1.4rem; }
li > span.toggle { cursor: pointer; user-select: none; display: inline-block; width: 1.1rem; color: #64748b; }
li.collapsed > ul { display: none; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div id="map"></div>
<script>
var forest = {{.Forest}};
function render(nodes, parent) {
  var ul = document.createElement("ul");
  nodes.forEach(function (n) {
    var li = document.createElement("li");
    var toggle = document.createElement("span");
    toggle.className = "toggle";
    var hasKids = n.children && n.children.length > 0;
    toggle.textContent = hasKids ? (n.expanded ? "▾" : "▸") : "•";
    li.appendChild(toggle);
    li.appendChild(document.createTextNode(n.label));
    if (hasKids) {
      li.appendChild(render(n.children, li));
      if (!n.expanded) li.classList.add("collapsed");
      toggle.addEventListener("click", function () {
        li.classList.toggle("collapsed");
        toggle.textContent = li.classList.contains("collapsed") ? "▸" : "▾";
      });
    }
    ul.appendChild(li);
  });
  if (parent) parent.appendChild(ul);
  return ul;
}
document.getElementById("map").appendChild(render(forest.roots || [], null));
</script>
</body>
</html>
`))

// HTML renders the forest as a self-contained interactive page: the forest is
// embedded as JSON and a small inline script draws a collapsible list.
func HTML(f *outline.Forest, title string) ([]byte, error) {
	if title == "" {
		title = "Mind map"
	}
	var buf bytes.Buffer
	err := htmlTmpl.Execute(&buf, struct {
		Title  string
		Forest *outline.Forest
	}{Title: title, Forest: f})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
