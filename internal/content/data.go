package content

// Subject keys.
const (
	SubjectMath    = "math"
	SubjectScience = "science"
	SubjectEnglish = "english"
	SubjectHistory = "history"

	defaultSubjectKey = "default"
)

var questionBank = map[string]map[string][]Question{
	SubjectMath: {
		"algebra": {
			{ID: "1", Prompt: "What is the value of x in the equation 2x + 5 = 15?", Options: []string{"5", "7", "10", "15"}, Correct: 0, Explanation: "2x + 5 = 15, so 2x = 10, therefore x = 5"},
			{ID: "2", Prompt: "Which of these is a linear equation?", Options: []string{"x² + 2x = 5", "2x + 3y = 10", "x³ - 4 = 0", "xy = 15"}, Correct: 1, Explanation: "A linear equation has variables with power 1 only"},
			{ID: "3", Prompt: "What is the coefficient of x in 5x + 3y = 12?", Options: []string{"3", "5", "12", "8"}, Correct: 1, Explanation: "The coefficient is the number multiplying the variable"},
			{ID: "4", Prompt: "Solve for y: 3y - 7 = 14", Options: []string{"7", "21", "5", "3"}, Correct: 0, Explanation: "3y - 7 = 14, so 3y = 21, therefore y = 7"},
			{ID: "5", Prompt: "If 4x + 8 = 24, what is the value of x + 2?", Options: []string{"4", "6", "8", "10"}, Correct: 1, Explanation: "4x + 8 = 24, so 4x = 16, x = 4. Therefore x + 2 = 6"},
			{ID: "6", Prompt: "What is the slope of the line y = 3x + 5?", Options: []string{"3", "5", "8", "-3"}, Correct: 0, Explanation: "In the form y = mx + b, m is the slope. So slope = 3"},
		},
		"geometry": {
			{ID: "1", Prompt: "What is the sum of interior angles of a triangle?", Options: []string{"90°", "180°", "270°", "360°"}, Correct: 1, Explanation: "The sum of interior angles of any triangle is always 180°"},
			{ID: "2", Prompt: "What is the area of a rectangle with length 8 cm and width 5 cm?", Options: []string{"13 cm²", "26 cm²", "40 cm²", "80 cm²"}, Correct: 2, Explanation: "Area of rectangle = length × width = 8 × 5 = 40 cm²"},
			{ID: "3", Prompt: "In a right triangle, which side is the longest?", Options: []string{"Base", "Height", "Hypotenuse", "All are equal"}, Correct: 2, Explanation: "The hypotenuse is always the longest side in a right triangle"},
			{ID: "4", Prompt: "What is the perimeter of a square with side 6 cm?", Options: []string{"12 cm", "18 cm", "24 cm", "36 cm"}, Correct: 2, Explanation: "Perimeter of square = 4 × side = 4 × 6 = 24 cm"},
			{ID: "5", Prompt: "How many sides does a hexagon have?", Options: []string{"5", "6", "7", "8"}, Correct: 1, Explanation: "A hexagon has 6 sides by definition"},
			{ID: "6", Prompt: "What is the circumference of a circle with radius 7 cm? (Use π = 22/7)", Options: []string{"22 cm", "44 cm", "154 cm", "308 cm"}, Correct: 1, Explanation: "Circumference = 2πr = 2 × (22/7) × 7 = 44 cm"},
		},
	},
	SubjectScience: {
		"physics": {
			{ID: "1", Prompt: "What is Newton's First Law of Motion?", Options: []string{"F = ma", "Every action has equal reaction", "Object at rest stays at rest", "Energy is conserved"}, Correct: 2, Explanation: "Newton's First Law states that an object at rest stays at rest unless acted upon by a force"},
			{ID: "2", Prompt: "What is the unit of force?", Options: []string{"Joule", "Newton", "Watt", "Pascal"}, Correct: 1, Explanation: "Force is measured in Newtons (N)"},
			{ID: "3", Prompt: "What is the acceleration due to gravity on Earth?", Options: []string{"9.8 m/s²", "10 m/s²", "8.9 m/s²", "11 m/s²"}, Correct: 0, Explanation: "The acceleration due to gravity on Earth is approximately 9.8 m/s²"},
			{ID: "4", Prompt: "Which of Newton's laws states F = ma?", Options: []string{"First Law", "Second Law", "Third Law", "Fourth Law"}, Correct: 1, Explanation: "Newton's Second Law states that Force equals mass times acceleration (F = ma)"},
			{ID: "5", Prompt: "What happens to the kinetic energy when speed doubles?", Options: []string{"Doubles", "Triples", "Quadruples", "Remains same"}, Correct: 2, Explanation: "Kinetic energy = ½mv². When speed doubles, KE becomes 4 times"},
			{ID: "6", Prompt: "What is the SI unit of power?", Options: []string{"Joule", "Newton", "Watt", "Pascal"}, Correct: 2, Explanation: "Power is measured in Watts (W) in the SI system"},
		},
		"chemistry": {
			{ID: "1", Prompt: "What is the chemical symbol for Gold?", Options: []string{"Go", "Gd", "Au", "Ag"}, Correct: 2, Explanation: "Gold's chemical symbol is Au, from the Latin word 'aurum'"},
			{ID: "2", Prompt: "How many electrons does a neutral Carbon atom have?", Options: []string{"4", "6", "8", "12"}, Correct: 1, Explanation: "Carbon has atomic number 6, so it has 6 electrons in a neutral atom"},
			{ID: "3", Prompt: "What is the pH of pure water at 25°C?", Options: []string{"6", "7", "8", "9"}, Correct: 1, Explanation: "Pure water has a pH of 7, which is neutral"},
			{ID: "4", Prompt: "Which gas is most abundant in Earth's atmosphere?", Options: []string{"Oxygen", "Carbon dioxide", "Nitrogen", "Argon"}, Correct: 2, Explanation: "Nitrogen makes up about 78% of Earth's atmosphere"},
			{ID: "5", Prompt: "What is the molecular formula of methane?", Options: []string{"CH₄", "CO₂", "H₂O", "NH₃"}, Correct: 0, Explanation: "Methane consists of one carbon atom and four hydrogen atoms (CH₄)"},
			{ID: "6", Prompt: "What type of bond holds NaCl together?", Options: []string{"Covalent", "Ionic", "Metallic", "Hydrogen"}, Correct: 1, Explanation: "NaCl (sodium chloride) is held together by ionic bonds"},
		},
		"biology": {
			{ID: "1", Prompt: "What is the basic unit of life?", Options: []string{"Tissue", "Organ", "Cell", "Organism"}, Correct: 2, Explanation: "The cell is the basic structural and functional unit of all living things"},
			{ID: "2", Prompt: "Which organelle is known as the 'powerhouse of the cell'?", Options: []string{"Nucleus", "Mitochondria", "Ribosome", "Golgi apparatus"}, Correct: 1, Explanation: "Mitochondria produce ATP energy for the cell, earning the nickname 'powerhouse'"},
			{ID: "3", Prompt: "What process do plants use to make their own food?", Options: []string{"Respiration", "Photosynthesis", "Digestion", "Reproduction"}, Correct: 1, Explanation: "Plants use photosynthesis to convert sunlight, CO₂, and water into glucose"},
			{ID: "4", Prompt: "How many chambers does a human heart have?", Options: []string{"2", "3", "4", "5"}, Correct: 2, Explanation: "The human heart has 4 chambers: 2 atria and 2 ventricles"},
			{ID: "5", Prompt: "What is the function of red blood cells?", Options: []string{"Fight infection", "Carry oxygen", "Form clots", "Digest food"}, Correct: 1, Explanation: "Red blood cells contain hemoglobin which carries oxygen throughout the body"},
			{ID: "6", Prompt: "Which part of the brain controls balance and coordination?", Options: []string{"Cerebrum", "Cerebellum", "Medulla", "Pons"}, Correct: 1, Explanation: "The cerebellum is responsible for balance, coordination, and fine motor control"},
		},
	},
	SubjectEnglish: {
		"grammar": {
			{ID: "1", Prompt: "What is the plural form of 'child'?", Options: []string{"childs", "childes", "children", "child's"}, Correct: 2, Explanation: "'Children' is the irregular plural form of 'child'"},
			{ID: "2", Prompt: "Which sentence uses correct punctuation?", Options: []string{"Its a beautiful day.", "It's a beautiful day.", "Its' a beautiful day.", "It,s a beautiful day."}, Correct: 1, Explanation: "'It's' is the contraction for 'it is', requiring an apostrophe"},
			{ID: "3", Prompt: "What type of word is 'quickly' in: 'She ran quickly'?", Options: []string{"Noun", "Verb", "Adjective", "Adverb"}, Correct: 3, Explanation: "'Quickly' describes how she ran, making it an adverb"},
			{ID: "4", Prompt: "Which is the correct past tense of 'go'?", Options: []string{"goed", "went", "gone", "going"}, Correct: 1, Explanation: "'Went' is the irregular past tense form of 'go'"},
			{ID: "5", Prompt: "What is the subject in: 'The big dog barked loudly'?", Options: []string{"big", "dog", "The big dog", "barked"}, Correct: 2, Explanation: "The complete subject includes the article and adjective: 'The big dog'"},
			{ID: "6", Prompt: "Which sentence is in passive voice?", Options: []string{"John ate the apple.", "The apple was eaten by John.", "John is eating an apple.", "John will eat the apple."}, Correct: 1, Explanation: "Passive voice uses 'was/were + past participle' and focuses on the action receiver"},
		},
		"literature": {
			{ID: "1", Prompt: "What is a metaphor?", Options: []string{"A direct comparison using 'like' or 'as'", "A direct comparison without 'like' or 'as'", "An exaggeration", "A sound word"}, Correct: 1, Explanation: "A metaphor is a direct comparison that doesn't use 'like' or 'as'"},
			{ID: "2", Prompt: "What is the main character in a story called?", Options: []string{"Antagonist", "Protagonist", "Supporting character", "Narrator"}, Correct: 1, Explanation: "The protagonist is the main character around whom the story revolves"},
			{ID: "3", Prompt: "What is alliteration?", Options: []string{"Repetition of vowel sounds", "Repetition of consonant sounds", "Rhyming words", "Repeated lines"}, Correct: 1, Explanation: "Alliteration is the repetition of initial consonant sounds in consecutive words"},
			{ID: "4", Prompt: "What is the setting of a story?", Options: []string{"The main character", "The plot", "When and where it takes place", "The theme"}, Correct: 2, Explanation: "Setting refers to the time and place where the story occurs"},
			{ID: "5", Prompt: "What is a haiku?", Options: []string{"A 14-line poem", "A 3-line poem with 5-7-5 syllables", "A rhyming couplet", "A story poem"}, Correct: 1, Explanation: "A haiku is a traditional Japanese poem with 3 lines following a 5-7-5 syllable pattern"},
			{ID: "6", Prompt: "What is personification?", Options: []string{"Comparing two things", "Giving human traits to non-human things", "Exaggerating for effect", "Using the five senses"}, Correct: 1, Explanation: "Personification gives human characteristics to non-human objects or ideas"},
		},
	},
	SubjectHistory: {
		"ancient-civilizations": {
			{ID: "1", Prompt: "Which river was crucial to Ancient Egyptian civilization?", Options: []string{"Ganges", "Nile", "Euphrates", "Indus"}, Correct: 1, Explanation: "The Nile River was the lifeline of Ancient Egyptian civilization"},
			{ID: "2", Prompt: "What were the Egyptian kings called?", Options: []string{"Emperors", "Sultans", "Pharaohs", "Caesars"}, Correct: 2, Explanation: "Ancient Egyptian rulers were called Pharaohs"},
			{ID: "3", Prompt: "Which ancient wonder was located in Egypt?", Options: []string{"Hanging Gardens", "Colossus of Rhodes", "Great Pyramid of Giza", "Lighthouse of Alexandria"}, Correct: 2, Explanation: "The Great Pyramid of Giza is the only surviving ancient wonder"},
			{ID: "4", Prompt: "What writing system did ancient Egyptians use?", Options: []string{"Cuneiform", "Hieroglyphics", "Sanskrit", "Latin"}, Correct: 1, Explanation: "Ancient Egyptians used hieroglyphics, a system of picture writing"},
			{ID: "5", Prompt: "Which civilization is known for the first democracy?", Options: []string{"Roman", "Egyptian", "Greek", "Persian"}, Correct: 2, Explanation: "Ancient Athens in Greece is credited with developing the first democracy"},
			{ID: "6", Prompt: "What was the primary building material for Mesopotamian ziggurats?", Options: []string{"Stone", "Wood", "Mud bricks", "Metal"}, Correct: 2, Explanation: "Mesopotamian ziggurats were built primarily with sun-dried mud bricks"},
		},
		"medieval-period": {
			{ID: "1", Prompt: "What was the feudal system?", Options: []string{"A trading system", "A social hierarchy system", "A religious system", "A military system"}, Correct: 1, Explanation: "Feudalism was a social hierarchy system based on land ownership and loyalty"},
			{ID: "2", Prompt: "Who were the Vikings?", Options: []string{"Medieval farmers", "Seafaring warriors from Scandinavia", "Christian monks", "Castle builders"}, Correct: 1, Explanation: "Vikings were seafaring warriors and traders from Scandinavia (8th-11th centuries)"},
			{ID: "3", Prompt: "What was the Black Death?", Options: []string{"A war", "A plague", "A famine", "A drought"}, Correct: 1, Explanation: "The Black Death was a devastating plague that killed about 1/3 of Europe's population"},
			{ID: "4", Prompt: "What were the Crusades?", Options: []string{"Trade expeditions", "Religious wars", "Exploration voyages", "Scientific missions"}, Correct: 1, Explanation: "The Crusades were religious wars fought between Christians and Muslims"},
			{ID: "5", Prompt: "What was a knight's code of conduct called?", Options: []string{"Feudalism", "Chivalry", "Monasticism", "Scholasticism"}, Correct: 1, Explanation: "Chivalry was the code of conduct that knights were expected to follow"},
			{ID: "6", Prompt: "Which empire was ruled by Charlemagne?", Options: []string{"Byzantine Empire", "Holy Roman Empire", "Ottoman Empire", "Mongol Empire"}, Correct: 1, Explanation: "Charlemagne ruled the Holy Roman Empire and was crowned emperor in 800 AD"},
		},
	},
}

var trueFalseBank = map[string][]TrueFalseItem{
	SubjectMath: {
		{Statement: "The sum of angles in a triangle is always 180°", Answer: true},
		{Statement: "A square has 5 sides", Answer: false},
		{Statement: "The hypotenuse is the longest side in a right triangle", Answer: true},
	},
	SubjectScience: {
		{Statement: "Water boils at 100°C at sea level", Answer: true},
		{Statement: "The heart has 3 chambers", Answer: false},
		{Statement: "Gold's chemical symbol is Au", Answer: true},
	},
	SubjectEnglish: {
		{Statement: "The plural of 'child' is 'childs'", Answer: false},
		{Statement: "A metaphor uses 'like' or 'as' for comparison", Answer: false},
		{Statement: "A haiku has 3 lines", Answer: true},
	},
	SubjectHistory: {
		{Statement: "Ancient Egyptian rulers were called Pharaohs", Answer: true},
		{Statement: "The Vikings were from South America", Answer: false},
		{Statement: "The Nile River was important to Egyptian civilization", Answer: true},
	},
}

var matchPairBank = map[string][]MatchPair{
	SubjectMath: {
		{Prompt: "2x + 4 = 10", Answer: "x = 3"},
		{Prompt: "5 × 6", Answer: "30"},
		{Prompt: "√64", Answer: "8"},
		{Prompt: "15 ÷ 3", Answer: "5"},
		{Prompt: "Area of square (side=4)", Answer: "16"},
	},
	SubjectScience: {
		{Prompt: "H₂O", Answer: "Water"},
		{Prompt: "Newton's 2nd Law", Answer: "F = ma"},
		{Prompt: "Symbol for Gold", Answer: "Au"},
		{Prompt: "Heart chambers", Answer: "4"},
		{Prompt: "Speed of light", Answer: "3×10⁸ m/s"},
	},
	SubjectEnglish: {
		{Prompt: "Plural of child", Answer: "children"},
		{Prompt: "Past tense of go", Answer: "went"},
		{Prompt: "It is (contraction)", Answer: "it's"},
		{Prompt: "Metaphor definition", Answer: "Direct comparison"},
		{Prompt: "Haiku syllable pattern", Answer: "5-7-5"},
	},
	SubjectHistory: {
		{Prompt: "Egyptian rulers", Answer: "Pharaohs"},
		{Prompt: "Nile River location", Answer: "Egypt"},
		{Prompt: "First democracy", Answer: "Greece"},
		{Prompt: "Medieval code", Answer: "Chivalry"},
		{Prompt: "Black Death was", Answer: "Plague"},
	},
	defaultSubjectKey: {
		{Prompt: "2 + 2", Answer: "4"},
		{Prompt: "5 × 3", Answer: "15"},
		{Prompt: "10 ÷ 2", Answer: "5"},
		{Prompt: "7 - 3", Answer: "4"},
		{Prompt: "3²", Answer: "9"},
	},
}

var memoryBank = map[string][]MatchPair{
	SubjectMath: {
		{Prompt: "2+2", Answer: "4"},
		{Prompt: "5×3", Answer: "15"},
		{Prompt: "√16", Answer: "4"},
		{Prompt: "10÷2", Answer: "5"},
		{Prompt: "3²", Answer: "9"},
		{Prompt: "8-3", Answer: "5"},
		{Prompt: "6×2", Answer: "12"},
		{Prompt: "20÷4", Answer: "5"},
	},
	SubjectScience: {
		{Prompt: "H2O", Answer: "Water"},
		{Prompt: "CO2", Answer: "Carbon Dioxide"},
		{Prompt: "NaCl", Answer: "Salt"},
		{Prompt: "O2", Answer: "Oxygen"},
		{Prompt: "Fe", Answer: "Iron"},
		{Prompt: "Au", Answer: "Gold"},
		{Prompt: "Ag", Answer: "Silver"},
		{Prompt: "Ca", Answer: "Calcium"},
	},
	SubjectEnglish: {
		{Prompt: "Happy", Answer: "Joyful"},
		{Prompt: "Big", Answer: "Large"},
		{Prompt: "Fast", Answer: "Quick"},
		{Prompt: "Smart", Answer: "Intelligent"},
		{Prompt: "Sad", Answer: "Unhappy"},
		{Prompt: "Small", Answer: "Tiny"},
		{Prompt: "Cold", Answer: "Freezing"},
		{Prompt: "Hot", Answer: "Warm"},
	},
	SubjectHistory: {
		{Prompt: "1947", Answer: "Independence"},
		{Prompt: "1857", Answer: "Revolt"},
		{Prompt: "Gandhi", Answer: "Mahatma"},
		{Prompt: "Nehru", Answer: "Prime Minister"},
		{Prompt: "Delhi", Answer: "Capital"},
		{Prompt: "Mughal", Answer: "Empire"},
		{Prompt: "British", Answer: "Colonial"},
		{Prompt: "Freedom", Answer: "Liberty"},
	},
}

var wordBank = map[string][]WordItem{
	SubjectMath: {
		{Word: "ALGEBRA", Hint: "Branch of mathematics dealing with symbols"},
		{Word: "GEOMETRY", Hint: "Study of shapes and angles"},
		{Word: "FRACTION", Hint: "Part of a whole number"},
		{Word: "EQUATION", Hint: "Mathematical statement with equals sign"},
		{Word: "TRIANGLE", Hint: "Three-sided polygon"},
		{Word: "RECTANGLE", Hint: "Four-sided shape with right angles"},
		{Word: "ADDITION", Hint: "Mathematical operation using plus sign"},
		{Word: "MULTIPLY", Hint: "Mathematical operation for repeated addition"},
	},
	SubjectScience: {
		{Word: "PHOTOSYNTHESIS", Hint: "Process plants use to make food"},
		{Word: "GRAVITY", Hint: "Force that pulls objects down"},
		{Word: "MOLECULE", Hint: "Smallest unit of a compound"},
		{Word: "ECOSYSTEM", Hint: "Community of living organisms"},
		{Word: "EVOLUTION", Hint: "Change in species over time"},
		{Word: "ELEMENT", Hint: "Pure substance on periodic table"},
		{Word: "ENERGY", Hint: "Ability to do work"},
		{Word: "MICROSCOPE", Hint: "Tool to see very small things"},
	},
	SubjectEnglish: {
		{Word: "METAPHOR", Hint: "Comparison without using like or as"},
		{Word: "ADJECTIVE", Hint: "Word that describes a noun"},
		{Word: "PARAGRAPH", Hint: "Group of sentences about one topic"},
		{Word: "SYNONYM", Hint: "Words with similar meanings"},
		{Word: "GRAMMAR", Hint: "Rules for using language correctly"},
		{Word: "POETRY", Hint: "Literature written in verse"},
		{Word: "DIALOGUE", Hint: "Conversation between characters"},
		{Word: "NARRATIVE", Hint: "Story or account of events"},
	},
	SubjectHistory: {
		{Word: "CIVILIZATION", Hint: "Advanced human society"},
		{Word: "DEMOCRACY", Hint: "Government by the people"},
		{Word: "REVOLUTION", Hint: "Sudden change in government"},
		{Word: "INDEPENDENCE", Hint: "Freedom from outside control"},
		{Word: "CONSTITUTION", Hint: "Document outlining government rules"},
		{Word: "EMPIRE", Hint: "Large territory under one ruler"},
		{Word: "REPUBLIC", Hint: "Government with elected representatives"},
		{Word: "MONUMENT", Hint: "Structure built to remember someone"},
	},
}

var shooterLevels = []ShooterLevel{
	{
		Level:  1,
		Target: Fraction{Display: "1/2", Value: 0.5},
		Pool: []Fraction{
			{Display: "2/4", Value: 0.5}, {Display: "3/6", Value: 0.5}, {Display: "4/8", Value: 0.5},
			{Display: "1/3", Value: 0.333}, {Display: "2/3", Value: 0.667}, {Display: "1/4", Value: 0.25},
		},
	},
	{
		Level:  2,
		Target: Fraction{Display: "1/3", Value: 0.333},
		Pool: []Fraction{
			{Display: "2/6", Value: 0.333}, {Display: "3/9", Value: 0.333}, {Display: "4/12", Value: 0.333},
			{Display: "1/2", Value: 0.5}, {Display: "2/5", Value: 0.4}, {Display: "3/8", Value: 0.375},
		},
	},
	{
		Level:  3,
		Target: Fraction{Display: "5/4", Value: 1.25},
		Pool: []Fraction{
			{Display: "10/8", Value: 1.25}, {Display: "15/12", Value: 1.25}, {Display: "20/16", Value: 1.25},
			{Display: "3/2", Value: 1.5}, {Display: "7/4", Value: 1.75}, {Display: "4/3", Value: 1.333},
		},
	},
}
