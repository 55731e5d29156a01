package lab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/pthm-cable/mitosis/cell"
)

// Console is the interactive menu over a Lab.
type Console struct {
	lab      *Lab
	in       *bufio.Scanner
	out      io.Writer
	au       aurora.Aurora
	commands *CommandRegistry
	running  bool
}

// NewConsole creates a console reading commands from in and rendering to out.
func NewConsole(l *Lab, in io.Reader, out io.Writer, color bool) *Console {
	return &Console{
		lab:      l,
		in:       bufio.NewScanner(in),
		out:      out,
		au:       aurora.NewAurora(color),
		commands: NewCommandRegistry(),
	}
}

// Run shows the menu until the user exits or input ends.
func (c *Console) Run() error {
	c.println(c.au.Bold("Welcome to the Cell Division Lab!"))
	c.println("Cells here divide themselves: every new cell is a clone of a living template.")

	c.running = true
	for c.running {
		c.showMenu()
		choice, ok := c.ask(fmt.Sprintf("\nEnter your choice (1-%d): ", len(c.commands.All())))
		if !ok {
			break
		}
		c.handle(choice)
	}
	return c.in.Err()
}

func (c *Console) showMenu() {
	c.header("CELL LAB MENU")
	for _, cmd := range c.commands.All() {
		c.printf("%s. %s\n", cmd.Key, cmd.Name)
	}
	if n := c.lab.Len(); n > 0 {
		c.printf("\nCurrent cells in lab: %d\n", n)
	}
}

func (c *Console) handle(choice string) {
	cmd, ok := c.commands.Match(choice)
	if !ok {
		c.fail("Invalid choice! Please enter 1-%d.", len(c.commands.All()))
		return
	}

	switch cmd.ID {
	case "create":
		c.create()
	case "divide":
		c.divide()
	case "grow":
		c.grow()
	case "view":
		c.view()
	case "teach":
		c.teach()
	case "oxygen":
		c.oxygen()
	case "templates":
		c.templates()
	case "exit":
		c.exit()
	}
}

// ask prompts and reads one trimmed line. ok is false once input is exhausted.
func (c *Console) ask(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		c.running = false
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// choose asks for a number in 1..n and returns it as a 0-based index.
func (c *Console) choose(prompt string, n int) (int, bool) {
	answer, ok := c.ask(fmt.Sprintf("\n%s (1-%d): ", prompt, n))
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(answer)
	if err != nil || i < 1 || i > n {
		c.fail("Invalid number!")
		return 0, false
	}
	return i - 1, true
}

func (c *Console) create() {
	c.header("CREATE NEW CELL")
	names := c.lab.Templates()
	c.println("Available templates:")
	for i, name := range names {
		c.printf("%d. %s\n", i+1, name)
	}

	answer, ok := c.ask(fmt.Sprintf("\nChoose template (1-%d or name): ", len(names)))
	if !ok {
		return
	}
	name := answer
	if i, err := strconv.Atoi(answer); err == nil {
		if i < 1 || i > len(names) {
			c.fail("Invalid choice!")
			return
		}
		name = names[i-1]
	}

	rec, err := c.lab.Create(name)
	if err != nil {
		c.fail("Failed to create cell: %v", err)
		return
	}
	c.ok("Created %s cell!", name)
	c.println("  " + rec.Description)
}

func (c *Console) listCells() []Record {
	cells := c.lab.Cells()
	c.println("Cells in lab:")
	for _, r := range cells {
		c.printf("%d. %s %s\n", r.Index+1, c.kindTag(r.Kind), r.Description)
	}
	return cells
}

func (c *Console) divide() {
	c.header("CELL DIVISION")
	if c.lab.Len() == 0 {
		c.fail("No cells in the lab! Create some cells first.")
		return
	}
	cells := c.listCells()
	index, ok := c.choose("Choose cell to divide", len(cells))
	if !ok {
		return
	}
	c.println("\nSelected: " + cells[index].Description)

	growFirst := false
	if weak, _ := c.lab.NeedsGrowth(index); weak {
		c.warn("Cell doesn't have enough energy to divide!")
		answer, ok := c.ask("Would you like to help it grow first? (y/n): ")
		if !ok {
			return
		}
		growFirst = strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
	}

	child, parent, err := c.lab.Divide(index, growFirst)
	if err != nil {
		c.fail("Division failed: %v", err)
		if parent.ID != "" {
			c.println("  Parent: " + parent.Description)
		}
		return
	}
	c.ok("Division successful!")
	c.println("  New cell: " + child.Description)
	c.println("  Parent:   " + parent.Description)
}

func (c *Console) grow() {
	c.header("HELP CELL GROW")
	if c.lab.Len() == 0 {
		c.fail("No cells in the lab! Create some cells first.")
		return
	}
	cells := c.listCells()
	index, ok := c.choose("Choose cell to help grow", len(cells))
	if !ok {
		return
	}
	before, after, err := c.lab.Grow(index)
	if err != nil {
		c.fail("%v", err)
		return
	}
	c.println("Before: " + before.Description)
	c.ok("After:  %s", after.Description)
}

func (c *Console) view() {
	c.header("ALL CELLS IN LAB")
	if c.lab.Len() == 0 {
		c.println("Lab is empty! No cells found.")
		return
	}
	c.printf("Total cells: %d\n", c.lab.Len())

	report := c.lab.Report()
	for _, kind := range cell.Kinds {
		cells := c.lab.ByKind(kind)
		if len(cells) == 0 {
			continue
		}
		c.printf("\n%s\n", c.au.Bold(kindTitle(kind)+" Cells:"))
		for i, r := range cells {
			c.printf("   %d. %s\n", i+1, r.Description)
		}
		ks := report.ByKind(kind)
		c.printf("   energy %.1f ± %.1f (min %.0f, max %.0f), mean age %.1f\n",
			ks.EnergyMean, ks.EnergyStd, ks.EnergyMin, ks.EnergyMax, ks.AgeMean)
	}
}

func (c *Console) teach() {
	c.header("TEACH BRAIN CELL")
	brains := c.lab.ByKind(cell.KindBrain)
	if len(brains) == 0 {
		c.fail("No brain cells in the lab! Create a brain cell first.")
		return
	}
	c.println("Available brain cells:")
	for i, r := range brains {
		c.printf("%d. Cell %s - Knowledge: %s\n", i+1, r.ID, strings.Join(r.Knowledge, ", "))
	}
	i, ok := c.choose("Choose brain cell", len(brains))
	if !ok {
		return
	}
	fact, ok := c.ask("What would you like to teach? ")
	if !ok {
		return
	}

	if _, err := c.lab.Teach(brains[i].Index, fact); err != nil {
		if errors.Is(err, ErrBlankFact) {
			c.fail("Please enter some knowledge to teach!")
			return
		}
		c.fail("%v", err)
		return
	}
	c.ok("Brain cell learned: %q", fact)
}

func (c *Console) oxygen() {
	c.header("GIVE OXYGEN TO BLOOD CELL")
	bloods := c.lab.ByKind(cell.KindBlood)
	if len(bloods) == 0 {
		c.fail("No blood cells in the lab! Create a blood cell first.")
		return
	}
	c.println("Available blood cells:")
	for i, r := range bloods {
		c.printf("%d. Cell %s - O2 Level: %d/%d\n", i+1, r.ID, r.Oxygen, cell.MaxOxygen)
	}
	i, ok := c.choose("Choose blood cell", len(bloods))
	if !ok {
		return
	}
	lo, hi := c.lab.DoseRange()
	answer, ok := c.ask(fmt.Sprintf("How much oxygen to give (%d-%d)? ", lo, hi))
	if !ok {
		return
	}
	amount, err := strconv.Atoi(answer)
	if err != nil {
		c.fail("Please enter a valid amount (%d-%d)!", lo, hi)
		return
	}

	rec, err := c.lab.GiveOxygen(bloods[i].Index, amount)
	if err != nil {
		c.fail("Please enter a valid amount (%d-%d)!", lo, hi)
		return
	}
	c.ok("Blood cell now carrying %d/%d oxygen!", rec.Oxygen, cell.MaxOxygen)
}

func (c *Console) templates() {
	c.header("TEMPLATE MANAGEMENT")
	names := c.lab.Templates()
	c.println("Current templates:")
	for i, name := range names {
		c.printf("%d. %s\n", i+1, name)
	}
	c.println("\nOptions:\n1. Add custom template\n2. View template details\n3. Go back")

	answer, ok := c.ask("\nChoose option (1-3): ")
	if !ok {
		return
	}
	switch answer {
	case "1":
		c.addTemplate()
	case "2":
		c.templateDetails(names)
	case "3":
	default:
		c.fail("Invalid choice!")
	}
}

func (c *Console) addTemplate() {
	c.header("ADD CUSTOM TEMPLATE")
	name, ok := c.ask("Enter template name: ")
	if !ok {
		return
	}
	dna, ok := c.ask("Enter DNA sequence: ")
	if !ok {
		return
	}
	c.println("Choose cell type:\n1. Basic Cell\n2. Blood Cell\n3. Brain Cell")
	answer, ok := c.ask("Enter choice (1-3): ")
	if !ok {
		return
	}

	spec := TemplateSpec{Name: name, DNA: dna}
	switch answer {
	case "1":
		spec.Kind = cell.KindBasic
	case "2":
		spec.Kind = cell.KindBlood
		level, ok := c.ask("Initial oxygen level (0-100): ")
		if !ok {
			return
		}
		oxygen, err := strconv.Atoi(level)
		if err != nil || oxygen < 0 || oxygen > cell.MaxOxygen {
			c.fail("Please enter a valid oxygen level (0-%d)!", cell.MaxOxygen)
			return
		}
		spec.Oxygen = oxygen
	case "3":
		spec.Kind = cell.KindBrain
		facts, ok := c.ask("Initial knowledge (comma-separated): ")
		if !ok {
			return
		}
		spec.Knowledge = splitFacts(facts)
	default:
		c.fail("Invalid cell type!")
		return
	}

	if _, err := c.lab.AddTemplate(spec); err != nil {
		c.fail("Failed to add template: %v", err)
		return
	}
	c.ok("Added template %q successfully!", strings.TrimSpace(name))
}

func (c *Console) templateDetails(names []string) {
	i, ok := c.choose("Choose template to view", len(names))
	if !ok {
		return
	}
	snap, err := c.lab.InspectTemplate(names[i])
	if err != nil {
		c.fail("%v", err)
		return
	}
	c.printf("\nTemplate: %s\n", c.au.Bold(names[i]))
	c.printf("  Kind:   %s\n", snap.Kind)
	c.printf("  DNA:    %s\n", snap.DNA)
	c.printf("  Energy: %d/%d (divides at %d)\n", snap.Energy, cell.MaxEnergy, cell.RulesFor(snap.Kind).Threshold)
	c.printf("  Age:    %d\n", snap.Age)
	switch snap.Kind {
	case cell.KindBlood:
		c.printf("  O2:     %d/%d\n", snap.Oxygen, cell.MaxOxygen)
	case cell.KindBrain:
		c.printf("  Knowledge: %s\n", strings.Join(snap.Knowledge, ", "))
	}
}

func (c *Console) exit() {
	c.header("Lab Session Complete!")
	c.printf("Total cells created: %d\n", c.lab.Len())
	report := c.lab.Report()
	for _, ks := range report.Kinds {
		c.printf("- %s cells: %d\n", ks.Kind, ks.Count)
	}
	if best, ok := c.lab.Collector().Lifetime().MostProlific(); ok {
		c.printf("Most prolific cell: %s (%d children)\n", best.CellID, best.Children)
	}
	if marks := c.lab.Bookmarks(); len(marks) > 0 {
		c.println("\nMilestones:")
		for _, b := range marks {
			c.printf("  #%d %s\n", b.Seq, b.Description)
		}
	}
	c.println("\nThanks for visiting the Cell Division Lab!")
	c.running = false
}

// splitFacts splits comma-separated input, dropping blank entries.
func splitFacts(s string) []string {
	var facts []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			facts = append(facts, f)
		}
	}
	return facts
}
