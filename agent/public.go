package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/tontine"
	"github.com/etnz/tontine/docs"
	"github.com/etnz/tontine/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// DataDir is the ledger directory the treasurer's tools read from. The
// command line sets it before starting the agent.
var DataDir = "."

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expect from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user manages rotating savings groups (tontines): members contribute a fixed
			amount every round and one member receives the whole pot in turn. The user is
			here primarily to know who has paid, who is late, whose turn it is to receive,
			and how the groups are doing overall.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewTreasurer creates the expert in charge of reading the tontine ledger.
func NewTreasurer() *Expert {

	lib := []Function{SummaryTool, RoundsTool, MembersTool}

	return &Expert{
		Name: "Treasurer",
		Description: `This is the Treasurer. He is in charge of reading the user's tontine ledger.
		He can report the overall situation, the rounds of any tontine with who has paid
		and who receives next, and the list of members.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the treasurer of the user's tontines.
				You know how to use the Tools to extract relevant information from the ledger.
				You are part of a team of experts, yours is everything recorded in the ledger.
				They might ask you questions in approximative language, figure out what they meant.

				Use the available tools to get information about
				  - the overall summary on a given day
				  - the rounds of a given tontine, who has paid and who receives
				  - the registered members
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

var SummaryTool = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Summary",
		Description: `Summary reports the overall situation of the ledger on a given day:
		how many members and tontines, which rounds are pending, and the amounts
		collected and paid out during that day's month.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"date": {
					Type: genai.TypeString,
					Description: `The date on which to report. Today is the default.
					Otherwise it uses a flexible date format based on YYYY-MM-DD:

					` + must(docs.GetTopic("dates")),
				},
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted summary of the ledger on that day.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		date, err := parseDate(args)
		if err != nil {
			return errResponse(id, "Summary", err)
		}
		l, err := loadLedger(ctx)
		if err != nil {
			return errResponse(id, "Summary", err)
		}
		return okResponse(id, "Summary", renderer.SummaryMarkdown(l.Summary(date)))
	},
}

var RoundsTool = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Rounds",
		Description: `Rounds details every round of one tontine: the receiver, the due
		date, how many members have paid, the amounts collected and the payouts.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"tontine": {
					Type:        genai.TypeString,
					Description: "The name of the tontine, as the user calls it.",
				},
			},
			Required: []string{"tontine"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of the tontine's rounds.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		name, _ := args["tontine"].(string)
		l, err := loadLedger(ctx)
		if err != nil {
			return errResponse(id, "Rounds", err)
		}
		t, err := findTontine(l, name)
		if err != nil {
			return errResponse(id, "Rounds", err)
		}
		return okResponse(id, "Rounds", renderer.RoundsMarkdown(l, t))
	},
}

var MembersTool = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Members",
		Description: `Members lists every registered member with their CNI, phone
		number and the date they joined.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of all members.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		l, err := loadLedger(ctx)
		if err != nil {
			return errResponse(id, "Members", err)
		}
		return okResponse(id, "Members", renderer.MembersMarkdown(l))
	},
}

// loadLedger opens the ledger from DataDir for each tool call, so the
// treasurer always sees the latest state on disk.
func loadLedger(ctx context.Context) (*tontine.Ledger, error) {
	store, err := tontine.NewDirStore(DataDir)
	if err != nil {
		return nil, fmt.Errorf("could not open data directory %q: %w", DataDir, err)
	}
	l, err := tontine.OpenLedger(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("could not load ledger: %w", err)
	}
	return l, nil
}

// findTontine resolves a tontine by name, ignoring case.
func findTontine(l *tontine.Ledger, name string) (*tontine.Tontine, error) {
	for _, t := range l.Tontines() {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return nil, fmt.Errorf("no tontine named %q", name)
}

func parseDate(args map[string]any) (tontine.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return tontine.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return tontine.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}

	date, err := tontine.ParseDate(sdate)
	if err != nil {
		return tontine.Today(), fmt.Errorf("argument 'date' must be a valid date got %q. Below is the doc about the date format\n\n%s ", sdate, must(docs.GetTopic("dates")))
	}

	return date, nil
}
