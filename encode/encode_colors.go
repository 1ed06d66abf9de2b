package encode

import (
	"strings"

	"github.com/signadot/ddbitem/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Tag  ir.Tag
	Attr ColorAttr
}

type ColorAttr int

const (
	TagColor ColorAttr = iota
	KeyColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Tags() {
		able := Colorable{
			Tag:  t,
			Attr: TagColor,
		}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Tag = ir.NumberTag
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Tag = ir.BoolTag
	colors.Map[able] = color.CyanString

	able.Tag = ir.StringTag
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Tag = ir.MapTag
	able.Attr = KeyColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	able.Tag = ir.ListTag
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Tag, a ColorAttr, s string) string {
	res := c.Get(t, a)(s)
	return res
}

func (c *Colors) Get(t ir.Tag, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Tag: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
