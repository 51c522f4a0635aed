package editor

import (
	"strings"
	"testing"
)

func TestAddInterfaceNoClause(t *testing.T) {
	got, ok := AddInterfaceToClass("public class Dice\n{\n}\n", "Dice", "IDice")
	if !ok {
		t.Fatal("header not found")
	}
	want := "public class Dice : IDice\n{\n}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAddInterfacePrimaryConstructor(t *testing.T) {
	got, ok := AddInterfaceToClass("public class Portal(string url)\n{\n}\n", "Portal", "IPortal")
	if !ok {
		t.Fatal("header not found")
	}
	want := "public class Portal(string url) : IPortal\n{\n}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAddInterfaceAppendsToList(t *testing.T) {
	got, ok := AddInterfaceToClass("public class Dice : DiceBase, IRollable\n{\n}\n", "Dice", "IScorable")
	if !ok {
		t.Fatal("header not found")
	}
	want := "public class Dice : DiceBase, IRollable, IScorable\n{\n}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAddInterfaceAlreadyPresent(t *testing.T) {
	text := "public class Dice : IDice\n{\n}\n"
	got, ok := AddInterfaceToClass(text, "Dice", "IDice")
	if !ok {
		t.Fatal("header not found")
	}
	if got != text {
		t.Errorf("duplicate interface appended: %q", got)
	}
}

func TestAddInterfaceClassNotFound(t *testing.T) {
	text := "public class Other\n{\n}\n"
	got, ok := AddInterfaceToClass(text, "Dice", "IDice")
	if ok {
		t.Error("missing class reported as rewritten")
	}
	if got != text {
		t.Errorf("text changed despite miss: %q", got)
	}
}

func TestAddInterfaceNameIsNotPrefixMatched(t *testing.T) {
	text := "public class DiceTower\n{\n}\n"
	got, ok := AddInterfaceToClass(text, "Dice", "IDice")
	if ok {
		t.Error("prefix of another class name treated as a match")
	}
	if got != text {
		t.Errorf("text changed: %q", got)
	}
}

func TestAddInterfaceBodyUntouched(t *testing.T) {
	text := `public class Dice
{
    public void Roll()
    {
        Console.WriteLine("x { y");
    }
}
`
	got, ok := AddInterfaceToClass(text, "Dice", "IDice")
	if !ok {
		t.Fatal("header not found")
	}
	if !strings.Contains(got, `Console.WriteLine("x { y");`) {
		t.Errorf("body disturbed:\n%s", got)
	}
	if !strings.HasPrefix(got, "public class Dice : IDice\n") {
		t.Errorf("header rewrite wrong:\n%s", got)
	}
}
