// internal/options/builder.go
package options

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"rnapipe/internal/config"
	"rnapipe/internal/params"
)

// Builder materializes the declared option table as command-line flags
// and assembles the raw configuration after parsing. Tokens are coerced
// through params.Spec so type and domain violations surface as the
// shared error taxonomy rather than flag-package strings.
type Builder struct {
	specs []params.Spec
}

// NewBuilder builds over the full declared option table.
func NewBuilder() *Builder { return &Builder{specs: config.Specs()} }

// Flags returns one cli.Flag per non-positional option. Booleans map to
// BoolFlag; everything else is taken as a token and coerced in Raw.
func (b *Builder) Flags() []cli.Flag {
	var flags []cli.Flag
	for _, sp := range b.specs {
		if sp.Positional {
			continue
		}
		if sp.Kind == params.KindBool {
			def, _ := sp.Default.(bool)
			flags = append(flags, &cli.BoolFlag{
				Name:    sp.Name,
				Aliases: sp.Aliases,
				Usage:   sp.Usage,
				Value:   def,
			})
			continue
		}
		flags = append(flags, &cli.StringFlag{
			Name:    sp.Name,
			Aliases: sp.Aliases,
			Usage:   sp.Usage,
			Value:   fmt.Sprint(sp.Default),
		})
	}
	return flags
}

// Raw assembles the raw configuration after c has been parsed.
// Precedence per option: CLI token > settings-file value > declared
// default. Every declared option gets an entry.
func (b *Builder) Raw(c *cli.Context, settings config.Settings) (config.Raw, error) {
	raw := make(config.Raw, len(b.specs))
	for _, sp := range b.specs {
		switch {
		case sp.Positional:
			raw[sp.Name] = c.Args().First()
		case sp.Kind == params.KindBool:
			raw[sp.Name] = c.Bool(sp.Name)
		case c.IsSet(sp.Name):
			v, err := sp.Coerce(c.String(sp.Name))
			if err != nil {
				return nil, err
			}
			raw[sp.Name] = v
		default:
			raw[sp.Name] = sp.Default
		}
	}
	return settings.Apply(raw, c.IsSet)
}
