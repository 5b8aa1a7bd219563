package lexicon

// MLConcepts is the entity vocabulary for machine-learning concepts,
// architectures and libraries. Every substring hit yields an ml_concept
// entity at its first occurrence.
var MLConcepts = []string{
	"neural network", "cnn", "rnn", "lstm", "gru", "transformer",
	"bert", "gpt", "random forest", "xgboost", "svm", "knn",
	"linear regression", "logistic regression", "decision tree",
	"scikit-learn", "pytorch", "tensorflow", "keras", "pandas",
	"numpy", "matplotlib", "seaborn",
}

// ProgrammingLanguages is the language-name vocabulary. Hits are emitted
// with a zero-width span; position is not meaningful for this class.
var ProgrammingLanguages = []string{"python", "r", "julia", "java", "c++"}

// DomainTerms is the reference list for typo correction. Tokens within the
// fuzzy-match threshold of one of these terms are rewritten to it.
var DomainTerms = []string{
	"neural", "network", "classification", "regression",
	"clustering", "supervised", "unsupervised", "reinforcement",
	"learning", "algorithm", "model", "training", "testing",
	"validation", "accuracy", "precision", "recall",
}
