package commands

// Command words recognised by the parser.
const (
	WordAdd       = "add"
	WordDelete    = "delete"
	WordEdit      = "edit"
	WordClear     = "clear"
	WordFind      = "find"
	WordList      = "list"
	WordAddTag    = "addtag"
	WordDeleteTag = "deletetag"
	WordStage     = "stage"
	WordHelp      = "help"
	WordExit      = "exit"
)

// Usage messages, shown with MessageInvalidCommandFormat and in the help overlay.
const (
	UsageAdd = WordAdd + ": Adds a candidate to Findr. " +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS [s/STAGE] [t/TAG]...\n" +
		"Example: " + WordAdd + " n/John Doe p/98765432 e/johnd@example.com " +
		"a/311, Clementi Ave 2, #02-25 s/Applied t/friends t/owesMoney"

	UsageDelete = WordDelete + ": Deletes the candidate identified by the index number used in the displayed candidate list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + WordDelete + " 1"

	UsageEdit = WordEdit + ": Edits the details of the candidate identified by the index number used in the displayed " +
		"candidate list. Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [s/STAGE] [t/TAG]...\n" +
		"Example: " + WordEdit + " 1 p/91234567 e/johndoe@example.com"

	UsageClear = WordClear + ": Deletes every candidate, or only the candidates at the given stage.\n" +
		"Parameters: all|STAGE (Applied, Interview, Offer or Rejected)\n" +
		"Example: " + WordClear + " Rejected"

	UsageFind = WordFind + ": Finds all candidates whose names contain any of the specified keywords " +
		"(case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + WordFind + " alice bob charlie"

	UsageList = WordList + ": Lists all candidates."

	UsageAddTag = WordAddTag + ": Adds tags to Findr's tag list.\n" +
		"Parameters: TAG [MORE_TAGS]...\n" +
		"Example: " + WordAddTag + " backend frontend"

	UsageDeleteTag = WordDeleteTag + ": Deletes a tag from Findr and removes it from every candidate.\n" +
		"Parameters: TAG\n" +
		"Example: " + WordDeleteTag + " backend"

	UsageStage = WordStage + ": Moves the candidate identified by the index number used in the displayed " +
		"candidate list to the given stage.\n" +
		"Parameters: INDEX (must be a positive integer) STAGE\n" +
		"Example: " + WordStage + " 1 Interview"

	UsageHelp = WordHelp + ": Shows program usage instructions.\n" +
		"Example: " + WordHelp

	UsageExit = WordExit + ": Exits the program.\n" +
		"Example: " + WordExit
)

// Info describes a command for help displays.
type Info struct {
	Word  string
	Usage string
}

// All returns every command in help order.
func All() []Info {
	return []Info{
		{WordAdd, UsageAdd},
		{WordEdit, UsageEdit},
		{WordDelete, UsageDelete},
		{WordStage, UsageStage},
		{WordClear, UsageClear},
		{WordFind, UsageFind},
		{WordList, UsageList},
		{WordAddTag, UsageAddTag},
		{WordDeleteTag, UsageDeleteTag},
		{WordHelp, UsageHelp},
		{WordExit, UsageExit},
	}
}
