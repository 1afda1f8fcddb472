package prompts

const classificationSystem = "You are a security classification assistant. " +
	"First, think step-by-step about the user's request. " +
	"Then, provide your final answer in the requested JSON format."

const generationSystem = "You are a helpful writing assistant. " +
	"Generate clear, coherent, and useful text based on the user's request. " +
	"Keep responses concise but informative."
