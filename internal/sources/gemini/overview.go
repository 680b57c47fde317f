package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/prepscout/internal/domain"
	"github.com/MrSnakeDoc/prepscout/internal/logger"
)

// Overview writes the company overview with two sequential model calls:
// a yes/no existence check, then the detailed description.
type Overview struct {
	model Model
	log   logger.Logger
}

func NewOverview(model Model, log logger.Logger) *Overview {
	if log == nil {
		log = logger.Nop()
	}
	return &Overview{model: model, log: log}
}

// Result is the text shown to the user plus how it was produced.
type Result struct {
	Text      string
	Unknown   bool // the existence check did not answer yes
	Uncertain bool // the reply admitted missing information
	Err       error
}

// Generate never fails: model errors become an apology in Result.Text.
func (o *Overview) Generate(ctx context.Context, company, role string) Result {
	log := o.log.With(logger.String("company", company))

	reply, err := o.model.Generate(ctx, ValidationPrompt(company))
	if err != nil {
		log.Warn("overview validation failed", logger.Error(err))
		return failure(company, err)
	}

	if !strings.Contains(strings.ToLower(reply), "yes") {
		log.Info("company not recognised by the model")
		return Result{Text: NotFoundMessage(company), Unknown: true}
	}

	overview, err := o.model.Generate(ctx, DetailPrompt(company, role))
	if err != nil {
		log.Warn("overview generation failed", logger.Error(err))
		return failure(company, err)
	}

	if domain.IsUncertain(overview) {
		return Result{
			Text:      fmt.Sprintf("Based on available information about '%s':\n\n%s", company, overview),
			Uncertain: true,
		}
	}
	return Result{Text: overview}
}

func failure(company string, err error) Result {
	return Result{
		Text: fmt.Sprintf("Sorry, I couldn't generate information about '%s' at this time. Error: %v", company, err),
		Err:  err,
	}
}

func NotFoundMessage(company string) string {
	return fmt.Sprintf("Sorry, I couldn't find reliable information about '%s'. "+
		"Please verify the company name or try a different company.", company)
}

func ValidationPrompt(company string) string {
	return fmt.Sprintf("Does the company '%s' exist as a known business entity? Respond with 'yes' or 'no'.", company)
}

// DetailPrompt asks for verified facts only. The role block is appended
// when role is not blank.
func DetailPrompt(company, role string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a detailed overview for the company '%s'. Include details such as its foundation, "+
		"CEO, services, and the countries where its products or services are available. "+
		"If you're not confident about specific information, DO NOT include guesses or placeholders. "+
		"Only include verified facts about the company. If you can't find enough information about this company, "+
		"state clearly what information is available and what isn't.", company)

	role = strings.TrimSpace(role)
	if role != "" {
		fmt.Fprintf(&b, "\n\nAlso, include specific information about '%[1]s' positions at %[2]s, such as: "+
			"1. Typical job responsibilities for %[1]s at %[2]s, "+
			"2. Required skills and qualifications for this role, "+
			"3. Career growth opportunities for %[1]s positions, "+
			"4. Any specific technologies or tools used by %[1]ss at %[2]s."+
			"\n\nIf you don't have specific information about this role at %[2]s, clearly state that.", role, company)
	}

	return b.String()
}
