package console

import (
	"fmt"

	survey "github.com/AlecAivazis/survey/v2"

	"github.com/gopak/depsort/internal/manager"
)

func (c *ConsoleUI) RunRemoveImperative(name string, yes bool) error {
	if !yes {
		ok := false
		if err := survey.AskOne(&survey.Confirm{Message: messageRemoveConfirm(name), Default: true}, &ok); err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	if err := c.m.Remove(name, manager.NewShellRunner()); err != nil {
		return err
	}
	fmt.Println(colorGreen("removed: " + name))
	return nil
}

func messageRemoveConfirm(name string) string { return fmt.Sprintf("Remove %s?", name) }
