// Package document 解析编辑器提交的结构化正文，并从中提取标题与副标题
package document

import (
	"bytes"
	"errors"
	"strings"

	"github.com/goccy/go-json"
)

const (
	TypeDoc       = "doc"
	TypeHeading   = "heading"
	TypeParagraph = "paragraph"
	TypeText      = "text"
)

var ErrEmptyDocument = errors.New("document content is empty")

// Block 文档节点；叶子节点携带 Text，容器节点携带 Content
type Block struct {
	Type    string         `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Text    string         `json:"text,omitempty"`
	Content []Block        `json:"content,omitempty"`
}

// PlainText 递归拼接节点内的全部文本
func (b Block) PlainText() string {
	var sb strings.Builder
	b.writeText(&sb)
	return strings.TrimSpace(sb.String())
}

func (b Block) writeText(sb *strings.Builder) {
	sb.WriteString(b.Text)
	for _, c := range b.Content {
		c.writeText(sb)
	}
}

// Parse 接受顶层块数组、{"type":"doc","content":[...]} 形式的根节点或单个块；
// 以 JSON 字符串形式提交的文档会先解开一层
func Parse(raw []byte) ([]Block, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, ErrEmptyDocument
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, err
		}
		if inner = strings.TrimSpace(inner); inner == "" || inner[0] == '"' {
			return nil, ErrEmptyDocument
		}
		return Parse([]byte(inner))
	}

	if raw[0] == '{' {
		var root Block
		if err := json.Unmarshal(raw, &root); err != nil {
			return nil, err
		}
		// 非 doc 根的单个对象按单块文档处理
		if root.Type != "" && root.Type != TypeDoc {
			return []Block{root}, nil
		}
		if len(root.Content) == 0 {
			return nil, ErrEmptyDocument
		}
		return root.Content, nil
	}

	var blocks []Block
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, ErrEmptyDocument
	}
	return blocks, nil
}

// Headline 标题取第一个 heading 块的文本，副标题取其后第一个 heading 或 paragraph 块的文本。
// 没有 heading 时 ok 为 false，副标题为空时返回 nil
func Headline(blocks []Block) (title string, subtitle *string, ok bool) {
	titleIdx := -1
	for i, b := range blocks {
		if b.Type == TypeHeading {
			titleIdx = i
			break
		}
	}
	if titleIdx < 0 {
		return "", nil, false
	}

	title = blocks[titleIdx].PlainText()
	for _, b := range blocks[titleIdx+1:] {
		if b.Type == TypeHeading || b.Type == TypeParagraph {
			if text := b.PlainText(); text != "" {
				subtitle = &text
			}
			break
		}
	}
	return title, subtitle, true
}

// Normalize 以紧凑 JSON 重新编码，作为入库的正文
func Normalize(blocks []Block) (string, error) {
	out, err := json.Marshal(blocks)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
