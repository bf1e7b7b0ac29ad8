// Package variable implements the dynamically typed variables of
// authored programs.
//
// A Variable is a number, a text or a structure of named child
// variables.  Reading a child never fails: GetChild turns its receiver
// into a structure and creates missing children as Number(0).
//
//	v := variable.New()
//	v.GetChild("player").GetChild("score").SetNumber(10)
//	fmt.Println(variable.ToJSON(v)) // {"player": {"score": 10}}
//
// JSON arrays read as structures named "0", "1", ...; structures are
// always written back as objects.
package variable
