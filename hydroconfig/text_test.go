package hydroconfig

import (
	jc "github.com/juju/testing/checkers"

	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(&textSuite{})

type textSuite struct{}

var wordTests = []struct {
	t          text
	expect     text
	expectRest text
}{{
	t:          newText(""),
	expect:     text{},
	expectRest: text{},
}, {
	t:      newText(" \t"),
	expect: text{},
	expectRest: text{
		p0: 2,
		p1: 2,
	},
}, {
	t: newText("x"),
	expect: text{
		s:  "x",
		p1: 1,
	},
	expectRest: text{
		p0: 1,
		p1: 1,
	},
}, {
	t: newText("discharge 100"),
	expect: text{
		s:  "discharge",
		p1: 9,
	},
	expectRest: text{
		s:  " 100",
		p0: 9,
		p1: 13,
	},
}, {
	t: newText("  head  "),
	expect: text{
		s:  "head",
		p0: 2,
		p1: 6,
	},
	expectRest: text{
		s:  "  ",
		p0: 6,
		p1: 8,
	},
}, {
	t: newText("net head").slice(4, 8),
	expect: text{
		s:  "head",
		p0: 4,
		p1: 8,
	},
	expectRest: text{
		p0: 8,
		p1: 8,
	},
}}

func (*textSuite) TestWord(c *gc.C) {
	for i, test := range wordTests {
		c.Logf("test %d: %q", i, test.t.s)
		w, rest := test.t.word()
		c.Check(w, jc.DeepEquals, test.expect)
		c.Check(rest, jc.DeepEquals, test.expectRest)
	}
}

var lineTests = []struct {
	t          text
	expect     text
	expectRest text
}{{
	t: newText("a\nb"),
	expect: text{
		s:  "a",
		p1: 1,
	},
	expectRest: text{
		s:  "b",
		p0: 2,
		p1: 3,
	},
}, {
	t: newText("velocity 6 ft/s"),
	expect: text{
		s:  "velocity 6 ft/s",
		p1: 15,
	},
	expectRest: text{
		p0: 15,
		p1: 15,
	},
}, {
	t:      newText("\n"),
	expect: text{},
	expectRest: text{
		p0: 1,
		p1: 1,
	},
}}

func (*textSuite) TestLine(c *gc.C) {
	for i, test := range lineTests {
		c.Logf("test %d: %q", i, test.t.s)
		line, rest := test.t.line()
		c.Check(line, jc.DeepEquals, test.expect)
		c.Check(rest, jc.DeepEquals, test.expectRest)
	}
}

var trimSpaceTests = []struct {
	t      text
	expect text
}{{
	t: newText("  héllo ü  "),
	expect: text{
		s:  "héllo ü",
		p0: 2,
		p1: 11,
	},
}, {
	t: newText("   "),
	expect: text{
		p0: 3,
		p1: 3,
	},
}, {
	t: newText("m³/s"),
	expect: text{
		s:  "m³/s",
		p1: 5,
	},
}}

func (*textSuite) TestTrimSpace(c *gc.C) {
	for i, test := range trimSpaceTests {
		c.Logf("test %d: %q", i, test.t.s)
		c.Check(test.t.trimSpace(), jc.DeepEquals, test.expect)
	}
}

func (*textSuite) TestTrimPrefix(c *gc.C) {
	rest, ok := newText("Net  Head 20 m").trimPrefix("net head")
	c.Assert(ok, gc.Equals, true)
	c.Assert(rest, jc.DeepEquals, text{
		s:  " 20 m",
		p0: 9,
		p1: 14,
	})

	t := newText("net flow")
	rest, ok = t.trimPrefix("net head")
	c.Assert(ok, gc.Equals, false)
	c.Assert(rest, jc.DeepEquals, t)
}

func (*textSuite) TestNumber(c *gc.C) {
	v, word, rest, err := newText("85% of it").number(true)
	c.Assert(err, gc.IsNil)
	c.Assert(v, gc.Equals, 85.0)
	c.Assert(word, jc.DeepEquals, text{
		s:  "85%",
		p1: 3,
	})
	c.Assert(rest.s, gc.Equals, " of it")

	_, _, _, err = newText("85%").number(false)
	c.Assert(err, gc.NotNil)

	_, word, _, err = newText(" lots").number(false)
	c.Assert(err, gc.NotNil)
	c.Assert(word.s, gc.Equals, "lots")
}

var cutCommentTests = []struct {
	t      text
	expect text
}{{
	t:      newText("# all comment"),
	expect: text{},
}, {
	t: newText("head 20 m # at the intake"),
	expect: text{
		s:  "head 20 m ",
		p1: 10,
	},
}, {
	t: newText("plant is Burn#2\t# second"),
	expect: text{
		s:  "plant is Burn#2\t",
		p1: 16,
	},
}, {
	t: newText("plant is Burn#2"),
	expect: text{
		s:  "plant is Burn#2",
		p1: 15,
	},
}}

func (*textSuite) TestCutComment(c *gc.C) {
	for i, test := range cutCommentTests {
		c.Logf("test %d: %q", i, test.t.s)
		c.Assert(test.t.cutComment(), jc.DeepEquals, test.expect)
	}
}
