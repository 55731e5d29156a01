package lab

import (
	"fmt"
	"strings"

	"github.com/pthm-cable/mitosis/cell"
)

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}

func (c *Console) header(title string) {
	c.printf("\n%s\n%s\n", c.au.Bold(title), strings.Repeat("=", len(title)))
}

func (c *Console) ok(format string, args ...interface{}) {
	c.println(c.au.Green(fmt.Sprintf(format, args...)))
}

func (c *Console) warn(format string, args ...interface{}) {
	c.println(c.au.Magenta(fmt.Sprintf(format, args...)))
}

func (c *Console) fail(format string, args ...interface{}) {
	c.println(c.au.Red(fmt.Sprintf(format, args...)))
}

func (c *Console) kindTag(k cell.Kind) string {
	tag := "[" + kindTitle(k) + "]"
	switch k {
	case cell.KindBlood:
		return fmt.Sprint(c.au.Red(tag))
	case cell.KindBrain:
		return fmt.Sprint(c.au.Magenta(tag))
	}
	return fmt.Sprint(c.au.Blue(tag))
}

func kindTitle(k cell.Kind) string {
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
