package nanojson

import "testing"

func TestKindPredicates(t *testing.T) {
	v, _ := parseOK(t, `[null,true,1,1.5,"s",[1],{"a":1}]`, 16)
	c := v.Cursor()
	wantKind := func(val Value[uint16], k Kind) {
		t.Helper()
		if val.Kind() != k {
			t.Errorf("kind = %v, want %v", val.Kind(), k)
		}
	}
	n, _ := c.Next()
	wantKind(n, KindNull)
	if !n.IsNull() {
		t.Error("expected IsNull")
	}
	b, _ := c.Next()
	wantKind(b, KindBool)
	if !b.IsBool() {
		t.Error("expected IsBool")
	}
	i, _ := c.Next()
	wantKind(i, KindInteger)
	if !i.IsInteger() || !i.IsDecimal() {
		t.Error("expected IsInteger and IsDecimal for an integer")
	}
	d, _ := c.Next()
	wantKind(d, KindDecimal)
	if !d.IsDecimal() || d.IsInteger() {
		t.Error("expected IsDecimal but not IsInteger for 1.5")
	}
	s, _ := c.Next()
	wantKind(s, KindString)
	if !s.IsString() {
		t.Error("expected IsString")
	}
	arr, _ := c.Next()
	wantKind(arr, KindArray)
	if !arr.IsArray() {
		t.Error("expected IsArray")
	}
	obj, _ := c.Next()
	wantKind(obj, KindObject)
	if !obj.IsObject() {
		t.Error("expected IsObject")
	}
	if _, ok := c.Next(); ok {
		t.Error("expected cursor exhausted after 7 elements")
	}
}

func TestRawAndName(t *testing.T) {
	v, _ := parseOK(t, `{"key":"value"}`, 8)
	child, _ := v.First()
	if string(child.Name()) != "key" {
		t.Errorf("Name() = %q, want %q", child.Name(), "key")
	}
	if string(child.Raw()) != "value" {
		t.Errorf("Raw() = %q, want %q", child.Raw(), "value")
	}
	if len(v.Name()) != 0 {
		t.Errorf("root Name() = %q, want empty", v.Name())
	}
}

func TestBoolValue(t *testing.T) {
	v, _ := parseOK(t, `[true,false]`, 8)
	first, _ := v.First()
	if !first.Bool() {
		t.Error("Bool() on \"true\" = false, want true")
	}
	second, _ := first.Next()
	if second.Bool() {
		t.Error("Bool() on \"false\" = true, want false")
	}
}

func TestUnescapeAndUnescapeInPlace(t *testing.T) {
	v, _ := parseOK(t, `["line1\nline2"]`, 8)
	child, _ := v.First()
	buf := make([]byte, len(child.Raw()))
	got, ok := child.Unescape(buf)
	if !ok {
		t.Fatalf("Unescape failed")
	}
	want := "line1\nline2"
	if string(got) != want {
		t.Errorf("Unescape = %q, want %q", got, want)
	}

	tooSmall := make([]byte, 1)
	if _, ok := child.Unescape(tooSmall); ok {
		t.Error("expected Unescape to fail on undersized dst")
	}

	input := []byte(`["line1\nline2"]`)
	desc := make([]Descriptor[uint16], 8)
	root, ok := Parse[uint16](input, desc)
	if !ok {
		t.Fatalf("Parse failed")
	}
	inPlaceChild, _ := root.First()
	got2 := inPlaceChild.UnescapeInPlace()
	if string(got2) != want {
		t.Errorf("UnescapeInPlace = %q, want %q", got2, want)
	}
}

func TestFirstNextTraversalOrder(t *testing.T) {
	v, _ := parseOK(t, `{"a":1,"b":2,"c":3}`, 8)
	var names []string
	for child, ok := v.First(); ok; child, ok = child.Next() {
		names = append(names, string(child.Name()))
	}
	want := []string{"a", "b", "c"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestFirstOnPrimitiveAndEmpty(t *testing.T) {
	v, _ := parseOK(t, `[1,{},[]]`, 8)
	n, _ := v.First()
	if _, ok := n.First(); ok {
		t.Error("First() on a primitive should fail")
	}
	emptyObj, _ := n.Next()
	if _, ok := emptyObj.First(); ok {
		t.Error("First() on an empty object should fail")
	}
}

func TestWalkVisitsPreOrder(t *testing.T) {
	v, _ := parseOK(t, `{"a":{"b":1},"c":2}`, 8)
	var kinds []Kind
	v.Walk(func(val Value[uint16]) bool {
		kinds = append(kinds, val.Kind())
		return true
	})
	want := []Kind{KindObject, KindObject, KindInteger, KindInteger}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestWalkEarlyStop(t *testing.T) {
	v, _ := parseOK(t, `[1,2,3]`, 8)
	count := 0
	v.Walk(func(val Value[uint16]) bool {
		count++
		return val.IsArray()
	})
	if count != 2 {
		t.Fatalf("count = %d, want 2 (root, then stop after first element)", count)
	}
}

func TestByNameAndByIndex(t *testing.T) {
	v, _ := parseOK(t, `{"x":1,"y":[10,20,30]}`, 16)
	y, ok := v.ByName([]byte("y"))
	if !ok || !y.IsArray() {
		t.Fatalf("ByName(y) failed")
	}
	if _, ok := v.ByName([]byte("missing")); ok {
		t.Error("ByName(missing) should fail")
	}
	elem, ok := y.ByIndex(1)
	if !ok {
		t.Fatalf("ByIndex(1) failed")
	}
	if n, ok := AsInt[int64](elem); !ok || n != 20 {
		t.Errorf("ByIndex(1) value = (%d, %v), want (20, true)", n, ok)
	}
	if _, ok := y.ByIndex(99); ok {
		t.Error("ByIndex(99) should fail")
	}
	if _, ok := v.ByIndex(0); ok {
		t.Error("ByIndex on a non-array should fail")
	}
}

func TestRootConstructor(t *testing.T) {
	input := []byte(`{"a":1}`)
	desc := make([]Descriptor[uint16], 8)
	if _, ok := Parse[uint16](input, desc); !ok {
		t.Fatalf("Parse failed")
	}
	v := Root[uint16](input, desc)
	if !v.IsObject() || v.Size() != 1 {
		t.Fatalf("Root() = %v size=%d, want Object size=1", v.Kind(), v.Size())
	}
}
