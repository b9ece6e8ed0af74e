package laminar

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/laminarconf/laminar/internal/treepath"
)

func TestApplyMergeTreeScenario4NestedReplace(t *testing.T) {
	Convey("Given a base tree with a nested container", t, func() {
		base := Mapping{
			"value_a": 111,
			"nested":  Mapping{"foo": 333, "bar": 444},
		}

		Convey("When a merge tree adds a key and replaces the nested container wholesale", func() {
			mt := NewMergeTree()
			root := treepath.Root()
			mt.Add(root, NewAdd("value_c", 999))
			mt.Add(root, NewReplace("nested", Mapping{"something": "else"}))

			merged, err := ApplyMergeTree(base, mt, false)
			So(err, ShouldBeNil)

			Convey("Then nested is replaced entirely and value_c is added", func() {
				top := merged["root"].(Mapping)
				So(top["value_a"], ShouldEqual, 111)
				So(top["value_c"], ShouldEqual, 999)
				So(top["nested"], ShouldResemble, Mapping{"something": "else"})
			})
		})
	})
}

func TestApplyMergeTreeScenario5ListAppendUnique(t *testing.T) {
	Convey("Given a base list", t, func() {
		base := Mapping{"listy": Sequence{1, 2, 3}}

		Convey("When ops fire in insertion order at root.listy", func() {
			mt := NewMergeTree()
			listyPath := treepath.Root().Child("listy")
			mt.Add(treepath.Root(), NewMerge("listy"))
			mt.Add(listyPath, NewAdd(0, 999))
			mt.Add(listyPath, NewAppend("appended"))
			mt.Add(listyPath, NewAppendUnique(2))
			mt.Add(listyPath, NewAppendUnique(3))
			mt.Add(listyPath, NewAppendUnique(4))

			merged, err := ApplyMergeTree(base, mt, false)
			So(err, ShouldBeNil)

			Convey("Then Add no-ops on conflict and AppendUnique skips existing elements", func() {
				top := merged["root"].(Mapping)
				So(top["listy"], ShouldResemble, Sequence{1, 2, 3, "appended", 4})
			})
		})
	})
}

func TestApplyMergeTreeScenario6JumpMerge(t *testing.T) {
	Convey("Given a deeply nested chain reached by a single jump", t, func() {
		base := Mapping{
			"level-1": Sequence{
				Mapping{"level-2": Mapping{"level-3": Mapping{"foo": 111}}},
			},
		}

		Convey("When a JumpMerge at root collapses the chain to level-3", func() {
			mt := NewMergeTree()
			root := treepath.Root()
			mt.Add(root, NewJumpMerge("level-1.0.level-2.level-3"))

			target := root.AppendDotted("level-1.0.level-2.level-3")
			mt.Add(target, NewReplace("foo", 999))
			mt.Add(target, NewAdd("new", 54321))

			merged, err := ApplyMergeTree(base, mt, false)
			So(err, ShouldBeNil)

			Convey("Then both ops land at level-3 and the rest of the tree is untouched", func() {
				top := merged["root"].(Mapping)
				level3 := top["level-1"].(Sequence)[0].(Mapping)["level-2"].(Mapping)["level-3"].(Mapping)
				So(level3["foo"], ShouldEqual, 999)
				So(level3["new"], ShouldEqual, 54321)
			})
		})
	})
}

func TestApplyMergeTreeEmptyIsEnsureRooted(t *testing.T) {
	Convey("Given any base tree", t, func() {
		base := Mapping{"a": 1, "b": Sequence{1, 2}}

		Convey("When applying an empty merge tree", func() {
			mt := NewMergeTree()
			merged, err := ApplyMergeTree(base, mt, false)
			So(err, ShouldBeNil)

			Convey("Then the result is ensure_rooted(base) with nothing changed", func() {
				So(merged, ShouldResemble, EnsureRooted(base))
			})
		})
	})
}

func TestApplyMergeTreeNoMutateBaseLeavesOriginalUntouched(t *testing.T) {
	Convey("Given a base tree and mutateBase=false", t, func() {
		base := Mapping{"nested": Mapping{"x": 1}}
		snapshot := DeepCopy(base)

		Convey("When a merge tree mutates the nested container", func() {
			mt := NewMergeTree()
			root := treepath.Root()
			mt.Add(root, NewMerge("nested"))
			mt.Add(root.Child("nested"), NewReplace("x", 99))

			_, err := ApplyMergeTree(base, mt, false)
			So(err, ShouldBeNil)

			Convey("Then the caller's original base is untouched", func() {
				So(base, ShouldResemble, snapshot)
			})
		})
	})
}

func TestApplyMergeTreeAccumulatesPerPathErrorsAndKeepsGoing(t *testing.T) {
	Convey("Given a base tree with one mapping and one sequence leaf", t, func() {
		base := Mapping{
			"dicty": Mapping{"x": 1},
			"listy": Sequence{1, 2},
		}

		Convey("When an Append is mistakenly aimed at the mapping and a valid op targets the sequence", func() {
			mt := NewMergeTree()
			root := treepath.Root()
			mt.Add(root, NewMerge("dicty"))
			mt.Add(root.Child("dicty"), NewAppend("oops"))
			mt.Add(root, NewMerge("listy"))
			mt.Add(root.Child("listy"), NewAppend(3))

			merged, err := ApplyMergeTree(base, mt, false)

			Convey("Then the type mismatch is reported without aborting the rest of the walk", func() {
				So(err, ShouldNotBeNil)
				errs, ok := err.(*Errors)
				So(ok, ShouldBeTrue)
				So(errs.Count(), ShouldEqual, 1)

				top := merged["root"].(Mapping)
				So(top["dicty"], ShouldResemble, Mapping{"x": 1})
				So(top["listy"], ShouldResemble, Sequence{1, 2, 3})
			})
		})
	})
}
