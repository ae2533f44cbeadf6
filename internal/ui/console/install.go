package console

import (
	"fmt"

	survey "github.com/AlecAivazis/survey/v2"

	"github.com/gopak/depsort/internal/manager"
)

// Install asks which packages to install, shows the resolved plan and runs it
// after confirmation.
func (c *ConsoleUI) Install() error {
	pkgs := c.m.Packages()
	if len(pkgs) == 0 {
		fmt.Println("Nothing to install")
		return nil
	}
	labels := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		labels = append(labels, p.Name)
	}

	selected := make([]string, 0)
	ms := &survey.MultiSelect{Message: "Select packages to install", Options: labels}
	if err := survey.AskOne(ms, &selected); err != nil {
		return err
	}
	if len(selected) == 0 {
		fmt.Println("Nothing selected")
		return nil
	}
	plan, err := c.m.Plan(selected)
	if err != nil {
		return err
	}
	for _, line := range c.m.DescribePlan(plan) {
		fmt.Println(line)
	}

	ok := false
	if err := survey.AskOne(&survey.Confirm{Message: "Proceed to install in this order?", Default: true}, &ok); err != nil {
		return err
	}
	if !ok {
		return nil
	}

	return c.m.InstallSelected(selected, manager.NewShellRunner(), func(n string, ok bool, msg string) {
		if ok {
			fmt.Println(colorGreen(msg + ": " + n))
			return
		}
		fmt.Println(colorRed("failed:  " + n))
		if msg != "" {
			fmt.Println(msg)
		}
	})
}
