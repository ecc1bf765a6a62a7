package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/attachments"
	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/config"
	"github.com/dmitrijs2005/jobkeeper/internal/logging"
	"github.com/dmitrijs2005/jobkeeper/internal/services"
	"github.com/dmitrijs2005/jobkeeper/internal/storage"
	"github.com/dmitrijs2005/jobkeeper/internal/store"
)

var errNoSelection = &common.ValidationError{
	Fields: []string{"selection"},
	Reason: "no application selected, use 'select <n>'",
}

type App struct {
	config  *config.Config
	log     logging.Logger
	store   *store.Store
	exports *services.ExportService
	loader  attachments.Loader
	closer  io.Closer

	reader *bufio.Reader
	out    io.Writer
	view   *renderer
	now    func() time.Time

	selectedID string
}

// NewApp opens the database named in c and loads the stored applications.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	gateway := services.NewSlotGateway(db, services.ApplicationsKey, log)
	st, err := store.New(ctx, gateway, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(st, services.NewExportService(c.ExportDir, log), bufio.NewReader(os.Stdin), os.Stdout, log)
	a.config = c
	a.loader = attachments.Loader{MaxSize: c.MaxAttachmentSize}
	a.closer = db
	return a, nil
}

func newApp(st *store.Store, exports *services.ExportService, reader *bufio.Reader, out io.Writer, log logging.Logger) *App {
	return &App{
		log:     log,
		store:   st,
		exports: exports,
		reader:  reader,
		out:     out,
		view:    newRenderer(out),
		now:     time.Now,
	}
}

// Run starts the REPL and closes the database when it ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintf(a.out, "jobkeeper: %d application(s) loaded (type 'help' for commands)\n", a.store.Len())
	runREPL(ctx, a.commands(), a.status, a.reader)
}

func (a *App) Close() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		a.log.Error(context.Background(), "failed to close database", "error", err)
	}
	a.closer = nil
}

// status is shown in the prompt: the selected application, if any.
func (a *App) status() string {
	if a.selectedID == "" {
		return ""
	}
	app, err := a.store.Get(a.selectedID)
	if err != nil {
		a.selectedID = ""
		return ""
	}
	return fmt.Sprintf("(%s - %s) ", app.Company, app.Title)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) commands() []command {
	return []command{
		{names: []string{"add"}, usage: "add", help: "create an application", run: a.add},
		{names: []string{"list", "l", "ls"}, usage: "list", help: "list applications with progress", run: a.list},
		{names: []string{"board"}, usage: "board", help: "show applications grouped by status", run: a.board},
		{names: []string{"select", "sel"}, usage: "select <n|id>", help: "select an application", run: a.selectApp},
		{names: []string{"show"}, usage: "show [n]", help: "show the selected application", run: a.show},
		{names: []string{"status"}, usage: "status <label>", help: "change status (not started, applied, interviewing, offer, rejected)", run: a.setStatus},
		{names: []string{"edit"}, usage: "edit <field>", help: "edit title, company, jobReqId or jobLink", run: a.edit},
		{names: []string{"cancel"}, usage: "cancel <field>", help: "discard a pending edit", run: a.cancelEdit},
		{names: []string{"notes"}, usage: "notes", help: "replace the application notes", run: a.notes},
		{names: []string{"reset"}, usage: "reset", help: "restore the default checklist and clear progress", run: a.reset},
		{names: []string{"delete", "rm"}, usage: "delete", help: "delete the selected application", run: a.deleteApp},
		{names: []string{"move", "mv"}, usage: "move <from> <to>", help: "reorder the list", run: a.move},
		{names: []string{"toggle", "t"}, usage: "toggle <group> <task>", help: "tick or untick a checklist task", run: a.toggle},
		{names: []string{"addtask"}, usage: "addtask <group> <text>", help: "add a checklist task", run: a.addTask},
		{names: []string{"rmtask"}, usage: "rmtask <group> <task>", help: "remove a checklist task", run: a.removeTask},
		{names: []string{"rename"}, usage: "rename <group> <task> <text>", help: "rename a checklist task", run: a.renameTask},
		{names: []string{"cnotes"}, usage: "cnotes", help: "edit checklist notes and interview questions", run: a.checklistNotes},
		{names: []string{"round"}, usage: "round add|set <n>|rm <n>", help: "manage interview rounds", run: a.round},
		{names: []string{"upcoming"}, usage: "upcoming", help: "list upcoming interviews", run: a.upcoming},
		{names: []string{"ics"}, usage: "ics <round>|all", help: "export interviews to a calendar file", run: a.calendar},
		{names: []string{"attach"}, usage: "attach <cover|resume> <path>", help: "attach a .pdf, .doc or .docx file", run: a.attach},
		{names: []string{"detach"}, usage: "detach <cover|resume>", help: "remove an attachment", run: a.detach},
		{names: []string{"saveatt"}, usage: "saveatt <cover|resume>", help: "save an attachment to the export directory", run: a.saveAttachment},
		{names: []string{"export", "backup"}, usage: "export [-p]", help: "write a JSON backup (-p seals it with a password)", run: a.export},
		{names: []string{"import", "restore"}, usage: "import <file>", help: "replace all applications with a backup", run: a.importBackup},
		{names: []string{"xlsx"}, usage: "xlsx", help: "export a spreadsheet", run: a.spreadsheet},
	}
}
