package render

import (
	"github.com/teranos/cligen/jsast"
	"github.com/teranos/cligen/transform"
)

func positional(name, typ string) transform.Positional {
	return transform.Positional{
		Name: name,
		Call: jsast.CallName("positional", jsast.Str(name),
			&jsast.ObjectLit{Props: []jsast.Property{{Key: "type", Value: jsast.Str(typ)}}}),
	}
}

func option(name string) transform.Option {
	return transform.Option{Name: name, Call: jsast.CallName("option", jsast.Str(name))}
}

func result(name string, positionals []transform.Positional, options []transform.Option) *transform.Result {
	return &transform.Result{
		Name:        name,
		Description: jsast.Str("Does " + name),
		Positionals: positionals,
		Options:     options,
	}
}
