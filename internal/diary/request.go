package diary

import (
	"strconv"
	"strings"
)

const (
	blockerAIInstruction = `BLOCKERS & RISKS RULES:
- MUST be realistic and directly related to the task/session topic.
- DO NOT simply say "None" or "No blockers".
- Focus on minor academic or technical hurdles.
- Examples: "Initial difficulty in grasping abstract concepts," "Minor configuration errors in the development environment," "Time constraints due to the complexity of the topic," "Required additional research to resolve logical errors," or "Need for more practice to achieve proficiency."`

	blockerAIPrompt = "Generate realistic, minor academic or technical blockers/risks for this task."
	blockerAIHint   = "A realistic, minor academic or technical risk/challenge faced during this specific task."
)

// BlockerDirective tells the generator what to put in the blockers field
type BlockerDirective struct {
	Mode BlockerMode

	// Literal is the exact blockers text. Empty when the generator
	// decides.
	Literal string

	// Instruction goes into the system prompt, Prompt into the user one
	Instruction string
	Prompt      string
}

// Value is the blockers placeholder shown in the response template
func (d BlockerDirective) Value() string {
	if d.Literal != "" {
		return d.Literal
	}
	return blockerAIHint
}

// Request is the generator's view of validated inputs
type Request struct {
	Date          string
	Topic         string
	Hours         string
	Skills        string
	Session       string
	Blocker       BlockerDirective
	ReferenceLink string
}

// NewRequest flattens inputs into the strings the generator works with
func NewRequest(in Inputs) Request {
	return Request{
		Date:          in.Date.Format(DateLayout),
		Topic:         strings.TrimSpace(in.Topic),
		Hours:         FormatHours(in.HoursWorked),
		Skills:        strings.Join(normalizeSkills(in.SkillsUsed), ", "),
		Session:       string(in.SessionType),
		Blocker:       newBlockerDirective(in.BlockerMode, in.BlockerInput),
		ReferenceLink: strings.TrimSpace(in.ReferenceLink),
	}
}

// FormatHours prints hours without trailing zeros: 8, 7.5
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func newBlockerDirective(mode BlockerMode, input string) BlockerDirective {
	switch mode {
	case BlockerNone:
		return BlockerDirective{
			Mode:        mode,
			Literal:     "None",
			Instruction: `The "blockers" field should be the exact string "None".`,
			Prompt:      `Set blockers to "None" (no blockers/risks).`,
		}
	case BlockerCustom:
		text := strings.TrimSpace(input)
		return BlockerDirective{
			Mode:        mode,
			Literal:     text,
			Instruction: `The "blockers" field should contain exactly this custom user input: ` + strconv.Quote(text),
			Prompt:      "Set blockers to: " + strconv.Quote(text),
		}
	default:
		return BlockerDirective{
			Mode:        BlockerAI,
			Instruction: blockerAIInstruction,
			Prompt:      blockerAIPrompt,
		}
	}
}
