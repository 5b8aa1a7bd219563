// Package sentiment turns text into a SentimentScore and drives the
// behaviors built on top of it: tone adjustment of outbound replies,
// escalation detection over recent history and conversation-level sentiment
// summaries.
//
// Classification is layered: a lexical Scorer supplies polarity and
// subjectivity, a prioritized phrase rule set picks the discrete emotion
// (urgency beats frustration beats satisfaction beats confusion beats bare
// polarity), and confidence is derived from subjectivity and text length
// alone. Non-English input is normalized through the Translator collaborator
// before scoring; if that fails the original text is scored instead.
package sentiment
