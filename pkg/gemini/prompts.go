package gemini

// SpatialInstructions steer the model toward plain JSON bounding boxes for
// object detection. They are prepended to the user prompt.
const SpatialInstructions = `Return bounding boxes as a JSON array with labels. Never return masks or code fencing.
Limit to 25 objects. If an object is present multiple times, name them according to
their unique characteristic (colors, size, position, unique characteristics, etc.).`

// EmotionInstructions steer the model toward "Person: <emotion>" labels with
// a fixed emotion vocabulary.
const EmotionInstructions = `Return bounding boxes as a JSON array with labels. Never return masks or code fencing.
Limit to 25 objects. For each person detected, analyze their facial expression and
select exactly one emotion from: [happy, sad, angry, surprise, disgust, fear, neutral].
Label format should be "Person: [emotion]".`

// Default user prompts for the two image analyzers.
const (
	DefaultSpatialPrompt = "Detect all objects in this image and label them with descriptions"
	DefaultEmotionPrompt = "Detect all people and analyze their emotions"
)
