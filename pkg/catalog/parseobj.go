/*
Copyright 2026 The kiwigo Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package catalog

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseDefaultExport parses the object literal following "export default"
// in a generated namespace file: identifier or quoted-string keys, string
// or nested-object values, trailing commas and comments tolerated. This is
// deliberately a narrow parser for the object-literal shape the Writer
// itself emits, not a general JS/TS parser, the same "thin adapter, not a
// full grammar" approach internal/jsscan takes for source files.
func ParseDefaultExport(src []byte) (*Node, error) {
	idx := strings.Index(string(src), "export default")
	if idx < 0 {
		return nil, errors.New("catalog: no \"export default\" found")
	}
	p := &objParser{src: src, pos: idx + len("export default")}
	p.skipWS()
	if p.pos >= len(p.src) || p.src[p.pos] != '{' {
		return nil, errors.New("catalog: default export is not an object literal")
	}
	return p.parseObject()
}

type objParser struct {
	src []byte
	pos int
}

func (p *objParser) skipWS() {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',' || c == ';':
			p.pos++
		case c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '/':
			for p.pos < len(p.src) && p.src[p.pos] != '\n' {
				p.pos++
			}
		case c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '*':
			p.pos += 2
			for p.pos+1 < len(p.src) && !(p.src[p.pos] == '*' && p.src[p.pos+1] == '/') {
				p.pos++
			}
			p.pos += 2
		default:
			return
		}
	}
}

func (p *objParser) parseObject() (*Node, error) {
	node := NewNode()
	if p.pos >= len(p.src) || p.src[p.pos] != '{' {
		return nil, errors.Errorf("catalog: expected '{' at byte %d", p.pos)
	}
	p.pos++
	for {
		p.skipWS()
		if p.pos >= len(p.src) {
			return nil, errors.New("catalog: unexpected end of object literal")
		}
		if p.src[p.pos] == '}' {
			p.pos++
			break
		}
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		p.skipWS()
		if p.pos >= len(p.src) || p.src[p.pos] != ':' {
			return nil, errors.Errorf("catalog: expected ':' after key %q", key)
		}
		p.pos++
		p.skipWS()
		if p.pos < len(p.src) && p.src[p.pos] == '{' {
			child, err := p.parseObject()
			if err != nil {
				return nil, err
			}
			node.Children[key] = child
			node.Order = append(node.Order, key)
			continue
		}
		val, err := p.parseStringValue()
		if err != nil {
			return nil, err
		}
		leaf := &Node{IsLeaf: true, Value: val}
		node.Children[key] = leaf
		node.Order = append(node.Order, key)
	}
	return node, nil
}

func (p *objParser) parseKey() (string, error) {
	p.skipWS()
	if p.pos >= len(p.src) {
		return "", errors.New("catalog: unexpected end of object literal parsing key")
	}
	c := p.src[p.pos]
	if c == '"' || c == '\'' {
		end := skipQuotedLocal(p.src, p.pos, c)
		key := string(p.src[p.pos+1 : end-1])
		p.pos = end
		return key, nil
	}
	start := p.pos
	for p.pos < len(p.src) && isIdentByte(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", errors.Errorf("catalog: invalid key at byte %d", p.pos)
	}
	return string(p.src[start:p.pos]), nil
}

func (p *objParser) parseStringValue() (string, error) {
	p.skipWS()
	if p.pos >= len(p.src) {
		return "", errors.New("catalog: unexpected end of object literal parsing value")
	}
	c := p.src[p.pos]
	if c != '"' && c != '\'' {
		return "", errors.Errorf("catalog: expected string value at byte %d", p.pos)
	}
	start := p.pos
	end := skipQuotedLocal(p.src, p.pos, c)
	raw := string(p.src[start+1 : end-1])
	p.pos = end
	return unescapeJS(raw), nil
}

// skipQuotedLocal returns the index just past the closing quote matching
// the opening quote byte q at src[open].
func skipQuotedLocal(src []byte, open int, q byte) int {
	i := open + 1
	for i < len(src) {
		if src[i] == '\\' {
			i += 2
			continue
		}
		if src[i] == q {
			return i + 1
		}
		i++
	}
	return i
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// unescapeJS de-escapes the handful of backslash sequences the Writer's own
// renderer produces: literal "\n" becomes a real newline, and "\\"/"\'"/"\""
// collapse to their plain form.
func unescapeJS(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case '\\', '\'', '"':
				b.WriteByte(s[i+1])
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
