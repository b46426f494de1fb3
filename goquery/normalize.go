package goquery

import "strings"

// normalizer decodes entities and drops the inline tags expected inside an
// example block. &amp;, &#34; and &#39; are the escapes x/net/html adds when
// it re-serializes text.
var normalizer = strings.NewReplacer(
	"&gt;", ">",
	"&lt;", "<",
	"&#34;", `"`,
	"&#39;", "'",
	"&amp;", "&",
	"<em>", "",
	"</em>", "",
	"<code>", "",
	"</code>", "",
)

// Normalize converts the markup of a code block into plain text with no
// trailing newlines.
func Normalize(markup string) string {
	return strings.TrimRight(normalizer.Replace(markup), "\n")
}
