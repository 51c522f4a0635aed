package parser

import (
	"testing"
)

const diceClass = `using System;
using System.Threading.Tasks;

namespace Game.Core
{
    public class Dice : DiceBase, IRollable
    {
        private readonly Random _rng = new Random();

        public Dice(int sides)
        {
        }

        public void RollDice()
        {
            Console.WriteLine(_rng.Next());
        }

        public int GetScore() { return 42; }

        public async Task<int> RollAsync(CancellationToken token)
        {
            return await Task.FromResult(1);
        }

        public T Pick<T>(IList<T> items)
        {
            return items[0];
        }

        public int Sides { get; set; }

        public string Label { get; }

        public event EventHandler Rolled;

        private void Shuffle()
        {
        }
    }
}
`

func methodNames(source, className string) []string {
	var names []string
	for _, m := range PublicMethods(source, className) {
		names = append(names, m.Name)
	}
	return names
}

func TestNamespace(t *testing.T) {
	if got := Namespace(diceClass); got != "Game.Core" {
		t.Errorf("Namespace = %q, want Game.Core", got)
	}
	if got := Namespace("public class Foo {}"); got != "" {
		t.Errorf("Namespace on namespace-less source = %q, want empty", got)
	}
}

func TestUsings(t *testing.T) {
	usings := Usings(diceClass)
	if len(usings) != 2 {
		t.Fatalf("got %d usings, want 2: %v", len(usings), usings)
	}
	if usings[0] != "using System;" {
		t.Errorf("first using = %q", usings[0])
	}
	if usings[1] != "using System.Threading.Tasks;" {
		t.Errorf("second using = %q", usings[1])
	}
}

func TestClassName(t *testing.T) {
	if got := ClassName(diceClass); got != "Dice" {
		t.Errorf("ClassName = %q, want Dice", got)
	}
	if got := ClassName("public class Portal(string url)\n{\n}"); got != "Portal" {
		t.Errorf("primary-constructor ClassName = %q, want Portal", got)
	}
}

func TestPublicMethods(t *testing.T) {
	names := methodNames(diceClass, "Dice")
	want := []string{"RollDice", "GetScore", "RollAsync", "Pick"}
	if len(names) != len(want) {
		t.Fatalf("got methods %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("method %d = %q, want %q", i, names[i], want[i])
		}
	}

	methods := PublicMethods(diceClass, "Dice")
	if methods[2].ReturnType != "Task<int>" {
		t.Errorf("RollAsync return type = %q, want Task<int>", methods[2].ReturnType)
	}
	if methods[2].Params != "CancellationToken token" {
		t.Errorf("RollAsync params = %q", methods[2].Params)
	}
	if methods[3].Generic != "<T>" {
		t.Errorf("Pick generic clause = %q, want <T>", methods[3].Generic)
	}
}

func TestConstructorExcluded(t *testing.T) {
	source := `public class Foo
{
    public void Foo()
    {
    }
}
`
	if names := methodNames(source, "Foo"); len(names) != 0 {
		t.Errorf("constructor-named member extracted as method: %v", names)
	}
}

func TestPublicProperties(t *testing.T) {
	props := PublicProperties(diceClass)
	if len(props) != 2 {
		t.Fatalf("got %d properties, want 2: %v", len(props), props)
	}
	if props[0].Name != "Sides" || props[0].Type != "int" {
		t.Errorf("first property = %+v", props[0])
	}
	if props[1].Name != "Label" || props[1].Type != "string" {
		t.Errorf("second property = %+v", props[1])
	}
}

func TestPublicEvents(t *testing.T) {
	events := PublicEvents(diceClass)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Name != "Rolled" || events[0].Type != "EventHandler" {
		t.Errorf("event = %+v", events[0])
	}
}

func TestFields(t *testing.T) {
	fields := Fields(diceClass)
	if len(fields) != 1 {
		t.Fatalf("got %d fields, want 1: %v", len(fields), fields)
	}
	f := fields[0]
	if f.Name != "_rng" || f.Modifier != "private" || !f.ReadOnly {
		t.Errorf("field = %+v", f)
	}
}

func TestInheritanceList(t *testing.T) {
	list := InheritanceList(diceClass)
	if len(list) != 2 || list[0] != "DiceBase" || list[1] != "IRollable" {
		t.Errorf("InheritanceList = %v", list)
	}
}

func TestImplementedInterfaces(t *testing.T) {
	ifaces := ImplementedInterfaces(diceClass)
	if len(ifaces) != 1 || ifaces[0] != "IRollable" {
		t.Errorf("ImplementedInterfaces = %v, want [IRollable]", ifaces)
	}
}

func TestIsInterfaceName(t *testing.T) {
	cases := map[string]bool{
		"IRollable":  true,
		"ICache<T>":  true,
		"Item":       false,
		"DiceBase":   false,
		"I":          false,
		"Repository": false,
	}
	for name, want := range cases {
		if got := IsInterfaceName(name); got != want {
			t.Errorf("IsInterfaceName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParseMethodLine(t *testing.T) {
	m := ParseMethodLine("    public async Task SaveAsync(User user)", diceClass)
	if m == nil {
		t.Fatal("ParseMethodLine returned nil")
	}
	if m.ReturnType != "Task" || m.Name != "SaveAsync" || m.Params != "User user" {
		t.Errorf("descriptor = %+v", m)
	}

	if m := ParseMethodLine("    public Dice(int sides)", diceClass); m != nil {
		t.Errorf("constructor line parsed as method: %+v", m)
	}
	if m := ParseMethodLine("var x = 1;", diceClass); m != nil {
		t.Errorf("non-method line parsed as method: %+v", m)
	}
}

func TestParsePropertyLine(t *testing.T) {
	p := ParsePropertyLine("    public List<Shot> Shots { get; set; }")
	if p == nil {
		t.Fatal("ParsePropertyLine returned nil")
	}
	if p.Type != "List<Shot>" || p.Name != "Shots" {
		t.Errorf("descriptor = %+v", p)
	}
	if p := ParsePropertyLine("    public void Run()"); p != nil {
		t.Errorf("method line parsed as property: %+v", p)
	}
}

func TestInterfaceMemberExtraction(t *testing.T) {
	body := `
    void RollDice();
    int GetScore();
    int Sides { get; set; }
    event EventHandler Rolled;
`
	methods := InterfaceMethods(body)
	if len(methods) != 2 || methods[0].Name != "RollDice" || methods[1].Name != "GetScore" {
		t.Errorf("InterfaceMethods = %+v", methods)
	}
	props := InterfaceProperties(body)
	if len(props) != 1 || props[0].Name != "Sides" {
		t.Errorf("InterfaceProperties = %+v", props)
	}
	events := InterfaceEvents(body)
	if len(events) != 1 || events[0].Name != "Rolled" {
		t.Errorf("InterfaceEvents = %+v", events)
	}
}

func TestFindMemberLine(t *testing.T) {
	line := FindMemberLine(diceClass, "GetScore")
	if line == "" {
		t.Fatal("GetScore line not found")
	}
	if FindMemberLine(diceClass, "Shuffle") != "" {
		t.Error("private member reported as public")
	}
	if FindMemberLine(diceClass, "Nope") != "" {
		t.Error("missing member reported as found")
	}
}

func TestMalformedInputFailsOpen(t *testing.T) {
	garbage := "this is not C# at all { ) ;"
	if got := Namespace(garbage); got != "" {
		t.Errorf("Namespace = %q", got)
	}
	if got := PublicMethods(garbage, ""); len(got) != 0 {
		t.Errorf("PublicMethods = %v", got)
	}
	if got := InheritanceList(garbage); len(got) != 0 {
		t.Errorf("InheritanceList = %v", got)
	}
}
