// internal/defs/grammar.go
package defs

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Файл уровней:
//
//	level 1 "Level One" {
//	    enemy "Assets/pig.png"
//	    projectile "Assets/egg.png"
//	    difficulty very_easy
//	    count 45
//	    grid 15 x 15
//	    spacing 130 150
//	}
type levelFile struct {
	Levels []*levelDecl `@@*`
}

type levelDecl struct {
	Pos    lexer.Position
	Number int          `"level" @Int`
	Name   string       `@String "{"`
	Props  []*levelProp `@@* "}"`
}

type levelProp struct {
	Pos        lexer.Position
	Enemy      *string      `  "enemy" @String`
	Projectile *string      `| "projectile" @String`
	Difficulty *string      `| "difficulty" @Ident`
	Count      *int         `| "count" @Int`
	Grid       *gridProp    `| "grid" @@`
	Spacing    *spacingProp `| "spacing" @@`
}

type gridProp struct {
	Columns int `@Int "x"`
	Rows    int `@Int`
}

type spacingProp struct {
	X float64 `@(Float | Int)`
	Y float64 `@(Float | Int)`
}

var levelParser = participle.MustBuild[levelFile](
	participle.Unquote("String"),
)
