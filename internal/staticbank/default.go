package staticbank

// DefaultEntries is the built-in question bank.
func DefaultEntries() map[string][]Entry {
	return map[string][]Entry{
		"C Programming": {
			{
				Question: "Which of the following is the correct format specifier for printing an integer in C?",
				Options:  []string{"%c", "%d", "%f", "%s"},
				Answer:   "%d",
			},
			{
				Question: "What is the size of a char in C?",
				Options:  []string{"1 byte", "2 bytes", "4 bytes", "Depends on the compiler"},
				Answer:   "1 byte",
			},
			{
				Question: "Which header file declares the printf function?",
				Options:  []string{"stdlib.h", "string.h", "stdio.h", "math.h"},
				Answer:   "stdio.h",
			},
			{
				Question: "Which operator is used to get the address of a variable?",
				Options:  []string{"*", "&", "->", "#"},
				Answer:   "&",
			},
			{
				Question: "Which function allocates memory dynamically on the heap?",
				Options:  []string{"malloc", "alloc", "new", "create"},
				Answer:   "malloc",
			},
			{
				Question: "What does the break statement do inside a loop?",
				Options:  []string{"Skips the current iteration", "Exits the loop", "Restarts the loop", "Exits the program"},
				Answer:   "Exits the loop",
			},
			{
				Question: "Which keyword prevents a variable from being modified?",
				Options:  []string{"static", "volatile", "const", "extern"},
				Answer:   "const",
			},
		},
		"COA": {
			{
				Question: "Which unit of the CPU performs arithmetic and logical operations?",
				Options:  []string{"Control Unit", "ALU", "Register File", "Cache"},
				Answer:   "ALU",
			},
			{
				Question: "Which memory is the fastest?",
				Options:  []string{"Main memory", "Cache memory", "Register", "Secondary storage"},
				Answer:   "Register",
			},
		},
		"DSGT": {
			{
				Question: "How many edges does a tree with n vertices have?",
				Options:  []string{"n", "n - 1", "n + 1", "2n"},
				Answer:   "n - 1",
			},
			{
				Question: "A relation that is reflexive, symmetric and transitive is called?",
				Options:  []string{"Partial order", "Equivalence relation", "Total order", "Function"},
				Answer:   "Equivalence relation",
			},
			{
				Question: "What is the cardinality of the power set of a set with 3 elements?",
				Options:  []string{"3", "6", "8", "9"},
				Answer:   "8",
			},
			{
				Question: "In a graph, the sum of all vertex degrees equals?",
				Options:  []string{"The number of edges", "Twice the number of edges", "The number of vertices", "Twice the number of vertices"},
				Answer:   "Twice the number of edges",
			},
		},
	}
}
