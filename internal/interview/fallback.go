package interview

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-pipeline/internal/types"
)

// fallbackPrep builds a prep guide deterministically from the requirement set
// alone. Questions reference the extracted skills where any exist so the
// guide still reflects the posting.
func fallbackPrep(requirements *types.RequirementSet) *types.InterviewPrep {
	return &types.InterviewPrep{
		Tips:                 fallbackTips(requirements),
		TechnicalQuestions:   fallbackTechnical(requirements),
		BehavioralQuestions:  fallbackBehavioral(),
		SituationalQuestions: fallbackSituational(),
		WinningStrategy:      "Be authentic, demonstrate how your skills solve the company's specific problems, and show enthusiasm for the role.",
		SynthesisMode:        types.SynthesisFallback,
	}
}

func fallbackTips(requirements *types.RequirementSet) []string {
	tips := []string{
		"Research the company's recent projects and values.",
		"Prepare examples using the STAR method (Situation, Task, Action, Result).",
		"Practice explaining your technical decisions and trade-offs.",
		"Have 2-3 thoughtful questions ready for the interviewer.",
	}
	if requirements != nil && len(requirements.RequiredSkills) > 0 {
		tips = append([]string{
			fmt.Sprintf("Review your experience with %s; expect questions on each.", humanJoin(requirements.RequiredSkills)),
		}, tips...)
	} else {
		tips = append([]string{
			"Review the core technologies mentioned in the job description.",
		}, tips...)
	}
	return tips
}

func fallbackTechnical(requirements *types.RequirementSet) []types.InterviewQuestion {
	questions := []types.InterviewQuestion{
		{
			Question: "Can you walk us through a challenging technical problem you solved recently?",
			Context:  "Focus on your problem-solving process and final outcome.",
		},
	}
	if requirements != nil && len(requirements.RequiredSkills) > 0 {
		questions = append(questions, types.InterviewQuestion{
			Question: fmt.Sprintf("What is your experience with %s?", humanJoin(requirements.RequiredSkills)),
			Context:  "Be specific about the libraries and frameworks you have used.",
		})
	} else {
		questions = append(questions, types.InterviewQuestion{
			Question: "What is your experience with the core tech stack mentioned in this role?",
			Context:  "Be specific about the libraries and frameworks you have used.",
		})
	}
	return questions
}

func fallbackBehavioral() []types.InterviewQuestion {
	return []types.InterviewQuestion{
		{
			Question: "Tell me about a time you had a conflict with a teammate. How did you handle it?",
			Context:  "Focus on collaboration and professionalism.",
		},
		{
			Question: "Where do you see your technical skills evolving in the next two years?",
			Context:  "Show a growth mindset and alignment with company goals.",
		},
	}
}

func fallbackSituational() []types.InterviewQuestion {
	return []types.InterviewQuestion{
		{
			Question: "You are given a task with a tight deadline and unclear requirements. What do you do?",
			Context:  "Focus on communication and prioritization.",
		},
	}
}

// humanJoin joins items with commas and a final "and".
func humanJoin(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
