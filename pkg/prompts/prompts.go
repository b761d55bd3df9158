// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"strings"

	"github.com/luxfi/crypto"
	"github.com/manifoldco/promptui"
)

const (
	Yes = "Yes"
	No  = "No"
)

// promptUIRunner is a variable for testing purposes to allow mocking prompt.Run()
var promptUIRunner = func(prompt promptui.Prompt) (string, error) {
	return prompt.Run()
}

// promptUISelectRunner is a variable for testing purposes to allow mocking select.Run()
var promptUISelectRunner = func(sel promptui.Select) (int, string, error) {
	return sel.Run()
}

type Prompter interface {
	CaptureString(promptStr string) (string, error)
	CapturePrivateKey(promptStr string) (string, error)
	CaptureYesNo(promptStr string) (bool, error)
	CaptureList(promptStr string, options []string) (string, error)
}

type realPrompter struct{}

func NewPrompter() Prompter {
	return &realPrompter{}
}

func (*realPrompter) CaptureString(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label: promptStr,
		Validate: func(input string) error {
			if input == "" {
				return errors.New("string cannot be empty")
			}
			return nil
		},
	}

	str, err := promptUIRunner(prompt)
	if err != nil {
		return "", err
	}

	return str, nil
}

// CapturePrivateKey reads a hex encoded secp256k1 key without echoing it.
// The returned key has no 0x prefix.
func (*realPrompter) CapturePrivateKey(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label:    promptStr,
		Mask:     '*',
		Validate: validatePrivateKey,
	}

	str, err := promptUIRunner(prompt)
	if err != nil {
		return "", err
	}

	return strings.TrimPrefix(strings.TrimSpace(str), "0x"), nil
}

func (*realPrompter) CaptureYesNo(promptStr string) (bool, error) {
	prompt := promptui.Select{
		Label: promptStr,
		Items: []string{Yes, No},
	}

	_, decision, err := promptUISelectRunner(prompt)
	if err != nil {
		return false, err
	}
	return decision == Yes, nil
}

func (*realPrompter) CaptureList(promptStr string, options []string) (string, error) {
	prompt := promptui.Select{
		Label: promptStr,
		Items: options,
	}
	_, listDecision, err := promptUISelectRunner(prompt)
	if err != nil {
		return "", err
	}
	return listDecision, nil
}

func validatePrivateKey(input string) error {
	input = strings.TrimPrefix(strings.TrimSpace(input), "0x")
	if input == "" {
		return errors.New("private key cannot be empty")
	}
	if _, err := crypto.HexToECDSA(input); err != nil {
		return errors.New("invalid private key")
	}
	return nil
}
