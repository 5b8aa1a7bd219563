package lexicon

import "github.com/hupe1980/convokit/core"

// IntentPattern pairs an intent category with its keyword list. A category's
// score is the fraction of its keywords found in the text.
type IntentPattern struct {
	Name     core.IntentName
	Keywords []string
}

// IntentPatterns lists every category in declaration order. Ties between
// equal scores resolve to the earliest entry, so the order here is part of
// the classification contract.
var IntentPatterns = []IntentPattern{
	{
		Name: core.IntentMLQuestion,
		Keywords: []string{
			"how", "what", "explain", "difference", "vs", "versus",
			"neural network", "cnn", "rnn", "lstm", "transformer",
			"classification", "regression", "clustering", "algorithm",
		},
	},
	{
		Name: core.IntentCodeDebug,
		Keywords: []string{
			"error", "bug", "fix", "debug", "not working", "issue",
			"problem", "exception", "traceback", "fails",
		},
	},
	{
		Name: core.IntentCodeGeneration,
		Keywords: []string{
			"write", "create", "generate", "build", "make",
			"code for", "script", "function", "class",
		},
	},
	{
		Name: core.IntentExplanation,
		Keywords: []string{
			"explain", "understand", "clarify", "elaborate",
			"what is", "how does", "why", "meaning",
		},
	},
	{
		Name: core.IntentDatasetHelp,
		Keywords: []string{
			"dataset", "data", "csv", "dataframe", "preprocessing",
			"cleaning", "null", "missing values", "feature engineering",
		},
	},
	{
		Name: core.IntentGeneralChat,
		Keywords: []string{
			"hello", "hi", "hey", "thanks", "thank you",
			"good", "great", "awesome", "bye",
		},
	},
}
