package questions

import (
	"context"

	"github.com/talentscout/hiring-assistant/internal/ai"
	"github.com/talentscout/hiring-assistant/internal/profile"
)

const (
	// MinQuestions and MaxQuestions bound every generated question set.
	MinQuestions = 3
	MaxQuestions = 5
)

// pools maps a technology keyword to its curated question pool. Pool order is
// fixed so selection stays reproducible.
var pools = map[string][]string{
	"python": {
		"Explain the difference between a list and a tuple and when to use each.",
		"What are list comprehensions and why are they useful?",
		"How does Python's GIL affect multithreaded code?",
		"What is a generator and when would you reach for one?",
		"Explain context managers and the 'with' statement.",
	},
	"go": {
		"How do goroutines differ from OS threads?",
		"Explain how channels and select are used to coordinate goroutines.",
		"What does 'accept interfaces, return structs' mean in practice?",
		"How do you propagate cancellation with context.Context?",
		"When would you use sync.Mutex instead of a channel?",
	},
	"django": {
		"What are Django models and migrations?",
		"Explain Django's MVT architecture.",
		"How do you optimize ORM queries in Django?",
		"What is middleware and when would you write a custom one?",
		"How would you implement authentication in a Django project?",
	},
	"flask": {
		"How do blueprints help structure a Flask application?",
		"What is the difference between the development server and a production WSGI server?",
		"Explain request context and application context in Flask.",
		"How do you handle configuration and secrets in Flask?",
		"How would you add authorization checks to Flask endpoints?",
	},
	"sql": {
		"Explain INNER JOIN versus LEFT JOIN with a simple example.",
		"What are indexes and how do they speed up queries?",
		"How do you find and optimize a slow query?",
		"Explain the ACID properties of relational databases.",
		"What is normalization and when would you denormalize?",
	},
	"postgresql": {
		"When would you choose JSONB columns over separate tables in PostgreSQL?",
		"How does MVCC work in PostgreSQL and what is vacuuming for?",
		"What can EXPLAIN ANALYZE tell you about a slow query?",
		"How do partial indexes differ from full indexes?",
		"How would you implement pagination efficiently for large tables?",
	},
	"mysql": {
		"What storage engines does MySQL offer and how do they differ?",
		"How do you diagnose a slow query in MySQL?",
		"Explain the difference between clustered and secondary indexes in InnoDB.",
		"How do transactions and isolation levels behave in MySQL?",
		"When would you use replication and what are its pitfalls?",
	},
	"javascript": {
		"Explain the difference between var, let and const.",
		"What are closures and where have you used one?",
		"How does the event loop work in JavaScript?",
		"Compare promises with async/await.",
		"What is debounce versus throttle and a use case for each?",
	},
	"typescript": {
		"What do union and intersection types express in TypeScript?",
		"How do generics improve reusable code in TypeScript?",
		"What does 'strict' mode enable and why does it matter?",
		"Explain structural typing and how it differs from nominal typing.",
		"When would you use unknown instead of any?",
	},
	"react": {
		"Explain the difference between state and props.",
		"What are hooks and when do you need useEffect?",
		"How do you optimize rendering performance in React?",
		"What is reconciliation and why do list keys matter?",
		"How do you manage global state across a React app?",
	},
	"nodejs": {
		"How does Node.js handle concurrency with a single thread?",
		"What is the difference between CommonJS and ES modules?",
		"How do you avoid blocking the event loop?",
		"Explain streams and a situation where they help.",
		"How do you structure error handling in async Node.js code?",
	},
	"java": {
		"Explain the difference between an interface and an abstract class.",
		"How does garbage collection work at a high level in the JVM?",
		"What do the equals and hashCode contracts require?",
		"How do you handle concurrency safely in Java?",
		"What are streams and when are they preferable to loops?",
	},
	"pandas": {
		"How do you handle missing values in a DataFrame?",
		"Why is vectorization faster than iterating rows in pandas?",
		"How do merge and join differ and when do you use each?",
		"What is groupby and an example use case?",
		"How do you reduce memory usage of a large DataFrame?",
	},
	"numpy": {
		"Explain broadcasting in NumPy with an example.",
		"What is the difference between a view and a copy of an array?",
		"Why is vectorization useful in NumPy?",
		"How do you compute matrix multiplication with NumPy?",
		"How do you filter an array by a condition efficiently?",
	},
	"pytorch": {
		"Explain autograd and computational graphs in PyTorch.",
		"What is the difference between a Module and a Tensor?",
		"How do you prevent overfitting in a PyTorch model?",
		"How do you move tensors between CPU and GPU?",
		"What is a DataLoader and why is it useful?",
	},
	"tensorflow": {
		"What are eager execution and graph execution in TensorFlow?",
		"How do you save and load a trained model?",
		"How would you implement early stopping?",
		"What is tf.data and why is it useful?",
		"Compare the Keras Sequential and Functional APIs.",
	},
	"machine learning": {
		"Explain the bias-variance tradeoff with an example.",
		"How do you choose between classification and regression for a problem?",
		"What is cross-validation and why does it matter?",
		"Explain precision, recall and F1-score.",
		"How do you handle class imbalance in a dataset?",
	},
	"docker": {
		"What is the difference between an image and a container?",
		"How do multi-stage builds keep images small?",
		"How do containers communicate with each other?",
		"What does a Docker volume solve?",
		"How would you debug a container that exits immediately?",
	},
	"kubernetes": {
		"What is the relationship between pods, deployments and services?",
		"How do liveness and readiness probes differ?",
		"How does Kubernetes schedule a pod onto a node?",
		"What are requests and limits for container resources?",
		"How would you roll back a bad deployment?",
	},
	"redis": {
		"Which Redis data structures have you used and for what?",
		"How does Redis persistence work (RDB versus AOF)?",
		"What are common caching patterns and their failure modes?",
		"How do key expiry and eviction policies interact?",
		"When is Redis the wrong tool?",
	},
	"kafka": {
		"What are topics, partitions and consumer groups?",
		"How does Kafka achieve ordering guarantees?",
		"What is the difference between at-least-once and exactly-once delivery?",
		"How do you handle consumer lag?",
		"When would you pick Kafka over a simple queue?",
	},
	"aws": {
		"How do you decide between EC2, ECS and Lambda for a workload?",
		"What does IAM least privilege look like in practice?",
		"How do you design for availability across AWS zones?",
		"What is the difference between S3 storage classes?",
		"How do you keep AWS costs under control?",
	},
	"git": {
		"What is the difference between merge and rebase?",
		"How do you undo a commit that was already pushed?",
		"What is a detached HEAD and how do you recover from it?",
		"How do you resolve a merge conflict safely?",
		"What does git bisect help you find?",
	},
}

// general backs up small or unrecognized stacks so a set always reaches the
// minimum count.
var general = []string{
	"Describe a challenging problem you solved with your preferred technology.",
	"How do you test and debug your code effectively?",
	"Tell us about a time you optimized the performance of an application.",
	"How do you ensure code quality and readability in a team?",
	"What engineering best practices do you follow in your projects?",
}

// Select picks 3 to 5 questions for the declared stack. Selection is a stable
// round-robin over the recognized technologies in declaration order: one
// question per technology per pass, favoring breadth over depth. Unrecognized
// entries contribute nothing; the general pool tops the set up to the
// minimum. The same stack always yields the same ordered output.
func Select(stack profile.Stack) []string {
	var recognized []string
	seen := make(map[string]bool)
	for _, tech := range stack {
		if _, ok := pools[tech]; ok && !seen[tech] {
			seen[tech] = true
			recognized = append(recognized, tech)
		}
	}

	selected := make([]string, 0, MaxQuestions)
	for pass := 0; len(selected) < MaxQuestions; pass++ {
		added := false
		for _, tech := range recognized {
			pool := pools[tech]
			if pass >= len(pool) {
				continue
			}
			selected = append(selected, pool[pass])
			added = true
			if len(selected) == MaxQuestions {
				break
			}
		}
		if !added {
			break
		}
	}

	for i := 0; len(selected) < MinQuestions && i < len(general); i++ {
		selected = append(selected, general[i])
	}

	return selected
}

// Bank is the deterministic question source used when the remote model is
// unavailable. It implements ai.QuestionSource and never fails.
type Bank struct{}

func NewBank() *Bank { return &Bank{} }

func (b *Bank) Questions(_ context.Context, req *ai.Request) ([]string, error) {
	var stack profile.Stack
	if req != nil && req.Profile != nil {
		stack, _ = req.Profile.TechStack()
	}
	return Select(stack), nil
}
