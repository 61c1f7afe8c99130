package service

const genericTrack = "generic"

// bankQuestion is a hand-authored entry in the static fallback bank.
type bankQuestion struct {
	Text       string
	Motivation string
	KeyPoints  []string
	Difficulty int
	FollowUps  []string
}

// questionBank is the static fallback used when the generation provider is
// unavailable or returns malformed output. Entries are ordered easier first so
// that prefix selection keeps the easier questions.
var questionBank = map[string][]bankQuestion{
	genericTrack: {
		{
			Text:       "Walk me through a recent project you are proud of. What was your role?",
			Motivation: "Opens the conversation and surfaces ownership and communication skills.",
			KeyPoints:  []string{"clear problem statement", "personal contribution", "measurable outcome"},
			Difficulty: 2,
			FollowUps:  []string{"What would you do differently today?"},
		},
		{
			Text:       "How do you decide what to test when time is limited?",
			Motivation: "Probes pragmatic engineering judgement.",
			KeyPoints:  []string{"risk-based prioritization", "critical paths first", "regression coverage"},
			Difficulty: 4,
			FollowUps:  []string{"Give an example where a skipped test bit you."},
		},
		{
			Text:       "Describe a production incident you debugged. How did you narrow it down?",
			Motivation: "Checks systematic debugging under pressure.",
			KeyPoints:  []string{"hypothesis-driven narrowing", "use of logs and metrics", "postmortem follow-up"},
			Difficulty: 5,
			FollowUps:  []string{"What monitoring did you add afterwards?"},
		},
		{
			Text:       "How would you review a pull request that is correct but hard to read?",
			Motivation: "Surfaces collaboration style and code quality standards.",
			KeyPoints:  []string{"separating blocking from optional feedback", "naming and structure", "empathy for the author"},
			Difficulty: 5,
			FollowUps:  []string{"When would you approve despite reservations?"},
		},
		{
			Text:       "Explain a technical trade-off you made where both options had real costs.",
			Motivation: "Tests reasoning about constraints rather than textbook answers.",
			KeyPoints:  []string{"explicit alternatives", "decision criteria", "revisiting the decision"},
			Difficulty: 6,
			FollowUps:  []string{"How did you communicate the trade-off to non-engineers?"},
		},
	},
	"javascript": {
		{
			Text:       "What is the difference between var, let, and const?",
			Motivation: "Baseline scoping knowledge.",
			KeyPoints:  []string{"function vs block scope", "hoisting", "reassignment vs rebinding"},
			Difficulty: 2,
			FollowUps:  []string{"What does the temporal dead zone mean?"},
		},
		{
			Text:       "Explain closures and give a practical use case.",
			Motivation: "Core language concept used daily.",
			KeyPoints:  []string{"lexical environment capture", "data privacy", "factory functions"},
			Difficulty: 4,
			FollowUps:  []string{"How do closures interact with loops?"},
		},
		{
			Text:       "How does the event loop schedule promises versus setTimeout callbacks?",
			Motivation: "Separates users of async from those who understand it.",
			KeyPoints:  []string{"microtask vs macrotask queues", "run-to-completion", "starvation risk"},
			Difficulty: 6,
			FollowUps:  []string{"When would await block rendering?"},
		},
		{
			Text:       "What is prototypal inheritance and how does class syntax relate to it?",
			Motivation: "Tests understanding beneath the syntax sugar.",
			KeyPoints:  []string{"prototype chain lookup", "class as sugar", "Object.create"},
			Difficulty: 6,
			FollowUps:  []string{"How would you implement instanceof by hand?"},
		},
		{
			Text:       "How would you find and fix a memory leak in a long-running Node.js service?",
			Motivation: "Practical production debugging.",
			KeyPoints:  []string{"heap snapshots", "common leak sources like caches and listeners", "observing RSS over time"},
			Difficulty: 7,
			FollowUps:  []string{"What does a detached DOM node leak look like in the browser?"},
		},
	},
	"python": {
		{
			Text:       "What is the difference between a list and a tuple, and when do you pick each?",
			Motivation: "Baseline data-structure fluency.",
			KeyPoints:  []string{"mutability", "hashability", "intent signalling"},
			Difficulty: 2,
			FollowUps:  []string{"Why can a tuple be a dict key?"},
		},
		{
			Text:       "Explain how decorators work and write one that times a function.",
			Motivation: "Tests functions-as-values and practical metaprogramming.",
			KeyPoints:  []string{"functions returning functions", "functools.wraps", "arguments forwarding"},
			Difficulty: 4,
			FollowUps:  []string{"How do decorators with parameters differ?"},
		},
		{
			Text:       "What does the GIL mean for CPU-bound versus IO-bound workloads?",
			Motivation: "Concurrency model understanding.",
			KeyPoints:  []string{"one thread executes bytecode at a time", "multiprocessing for CPU work", "asyncio or threads for IO"},
			Difficulty: 6,
			FollowUps:  []string{"When does the GIL get released?"},
		},
		{
			Text:       "How do generators differ from returning a list, and when do they matter?",
			Motivation: "Memory-conscious iteration.",
			KeyPoints:  []string{"lazy evaluation", "constant memory", "single consumption"},
			Difficulty: 5,
			FollowUps:  []string{"What does yield from do?"},
		},
		{
			Text:       "Describe a subtle bug caused by mutable default arguments and how to avoid it.",
			Motivation: "Classic pitfall that reveals real experience.",
			KeyPoints:  []string{"defaults evaluated once", "shared state across calls", "None sentinel pattern"},
			Difficulty: 5,
			FollowUps:  []string{"Where else does Python share state unexpectedly?"},
		},
	},
	"system-design": {
		{
			Text:       "Design a URL shortener. Start with the data model and the write path.",
			Motivation: "Canonical warm-up covering hashing, storage, and redirects.",
			KeyPoints:  []string{"key generation strategy", "collision handling", "read-heavy caching"},
			Difficulty: 4,
			FollowUps:  []string{"How do you handle a celebrity link going viral?"},
		},
		{
			Text:       "How would you scale a read-heavy service from one database to many?",
			Motivation: "Tests replication and caching fundamentals.",
			KeyPoints:  []string{"read replicas", "cache-aside with invalidation", "replication lag trade-offs"},
			Difficulty: 5,
			FollowUps:  []string{"What breaks when a replica falls behind?"},
		},
		{
			Text:       "Design a rate limiter for a public API. Which algorithm and where does it live?",
			Motivation: "Concrete component design with algorithmic choices.",
			KeyPoints:  []string{"token bucket vs sliding window", "distributed state in Redis", "fail-open vs fail-closed"},
			Difficulty: 6,
			FollowUps:  []string{"How do you rate limit per-user across regions?"},
		},
		{
			Text:       "Walk through delivering a message exactly once between two services. Is it possible?",
			Motivation: "Separates buzzword knowledge from delivery-semantics understanding.",
			KeyPoints:  []string{"at-least-once plus idempotency", "deduplication keys", "outbox pattern"},
			Difficulty: 7,
			FollowUps:  []string{"Where do you store the dedup state?"},
		},
		{
			Text:       "Design the storage layer for a chat application with message history.",
			Motivation: "Partitioning and ordering under realistic write volume.",
			KeyPoints:  []string{"partition by conversation", "time-ordered keys", "hot partition mitigation"},
			Difficulty: 7,
			FollowUps:  []string{"How would you add read receipts?"},
		},
	},
}
