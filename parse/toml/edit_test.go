package toml

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestSetValue(t *testing.T) {
	convey.Convey("replacing a value keeps everything around it", t, func() {
		src := "# config\nport = 8080   # main port\n\n[db]\nhost = \"localhost\"\n"
		doc, err := Parse(src)
		convey.So(err, convey.ShouldBeNil)

		v, err := ParseValue("9090")
		convey.So(err, convey.ShouldBeNil)
		convey.So(doc.SetValue([]string{"port"}, v), convey.ShouldBeTrue)
		convey.So(doc.String(), convey.ShouldEqual,
			"# config\nport = 9090   # main port\n\n[db]\nhost = \"localhost\"\n")

		s, err := ParseValue(`"db.example.com"`)
		convey.So(err, convey.ShouldBeNil)
		convey.So(doc.SetValue([]string{"db", "host"}, s), convey.ShouldBeTrue)
		convey.So(doc.String(), convey.ShouldEqual,
			"# config\nport = 9090   # main port\n\n[db]\nhost = \"db.example.com\"\n")
	})
	convey.Convey("a path that is not a value entry is refused", t, func() {
		doc, err := Parse("[t]\nx = 1\n")
		convey.So(err, convey.ShouldBeNil)
		v, _ := ParseValue("2")
		convey.So(doc.SetValue([]string{"t"}, v), convey.ShouldBeFalse)
		convey.So(doc.SetValue([]string{"missing"}, v), convey.ShouldBeFalse)
		convey.So(doc.SetValue(nil, v), convey.ShouldBeFalse)
	})
}

func TestAppendValue(t *testing.T) {
	convey.Convey("appending adds a canonical line at the end of the table", t, func() {
		doc, err := Parse("[db]\nhost = \"localhost\"\n")
		convey.So(err, convey.ShouldBeNil)
		v, _ := ParseValue("30")
		convey.So(doc.AppendValue([]string{"db"}, "timeout", v), convey.ShouldBeNil)
		convey.So(doc.String(), convey.ShouldEqual, "[db]\nhost = \"localhost\"\ntimeout = 30\n")

		convey.Convey("appending over an existing key is a duplicate-key error", func() {
			err := doc.AppendValue([]string{"db"}, "timeout", v)
			perr, ok := err.(*Error)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(perr.Kind, convey.ShouldEqual, ErrDuplicateKey)
			convey.So(perr.Table, convey.ShouldEqual, "db")
		})
	})
	convey.Convey("appending into a table that never had its own header writes one", t, func() {
		doc, err := Parse("[a.b]\nx = 1\n")
		convey.So(err, convey.ShouldBeNil)
		v, _ := ParseValue("2")
		convey.So(doc.AppendValue([]string{"a"}, "y", v), convey.ShouldBeNil)
		out := doc.String()
		convey.So(out, convey.ShouldEqual, "[a.b]\nx = 1\n[a]\ny = 2\n")

		convey.Convey("and the output re-parses into the same scopes", func() {
			re, err := Parse(out)
			convey.So(err, convey.ShouldBeNil)
			it, ok := re.Get("a", "y")
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(ToUntyped(it), convey.ShouldEqual, int64(2))
		})
	})
	convey.Convey("a key that needs quoting is quoted", t, func() {
		doc, err := Parse("")
		convey.So(err, convey.ShouldBeNil)
		v, _ := ParseValue("true")
		convey.So(doc.AppendValue(nil, "a b", v), convey.ShouldBeNil)
		convey.So(doc.String(), convey.ShouldEqual, "\"a b\" = true\n")
	})
}

func TestDel(t *testing.T) {
	convey.Convey("deleting removes the entry and its decoration", t, func() {
		doc, err := Parse("# gone with the key\nport = 8080\nhost = \"x\"\n")
		convey.So(err, convey.ShouldBeNil)
		convey.So(doc.Del("port"), convey.ShouldBeTrue)
		convey.So(doc.String(), convey.ShouldEqual, "host = \"x\"\n")
		convey.So(doc.Del("port"), convey.ShouldBeFalse)
	})
}

func TestParseValueStandalone(t *testing.T) {
	convey.Convey("leftover input after the value is rejected", t, func() {
		_, err := ParseValue("1 2")
		convey.So(err, convey.ShouldNotBeNil)
	})
	convey.Convey("surrounding whitespace is allowed", t, func() {
		v, err := ParseValue("  [1, 2]  ")
		convey.So(err, convey.ShouldBeNil)
		convey.So(v.Type, convey.ShouldEqual, ValueArray)
	})
}
