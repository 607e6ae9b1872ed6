package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/diillson/bizcase-simulator-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		_ = h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithRightAlignment().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayPanel exibe um texto dentro de uma caixa com título.
func (c *Console) DisplayPanel(title string, body string) {
	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(body)
	fmt.Println("\n" + panel)
}

// DisplayTrendBars exibe a série como barras horizontais, com a variação em relação ao período anterior.
// Valores negativos são desenhados em vermelho a partir do mesmo eixo.
func (c *Console) DisplayTrendBars(title string, series []types.MonthlyValue, format func(float64) string) {
	maxAbs := 0.0
	for _, v := range series {
		if math.Abs(v.Value) > maxAbs {
			maxAbs = math.Abs(v.Value)
		}
	}

	if maxAbs == 0 {
		pterm.Warning.Printfln("All values of %s are 0 for this period", title)
		return
	}

	tableData := pterm.TableData{
		{"Period", "Value", "", "Change"},
	}

	var prev *float64
	for _, v := range series {
		bar := strings.Repeat("█", barLength(v.Value, maxAbs))

		barColor := pterm.FgBlue.Sprint(bar)
		if v.Value < 0 {
			barColor = pterm.FgRed.Sprint(bar)
		}

		change := ""
		if prev != nil {
			change = formatChange(*prev, v.Value)
		}

		tableData = append(tableData, []string{v.Label, format(v.Value), barColor, change})

		current := v.Value
		prev = &current
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)
	fmt.Println("\n" + panel)
}

// barLength escala |value| para no máximo 40 caracteres.
func barLength(value, maxAbs float64) int {
	if maxAbs == 0 {
		return 0
	}
	return int((math.Abs(value) / maxAbs) * 40)
}

// formatChange calcula a variação percentual período a período.
func formatChange(prev, current float64) string {
	if math.Abs(prev) < 0.01 {
		if math.Abs(current) < 0.01 {
			return pterm.FgYellow.Sprint("0%")
		}
		return pterm.FgGray.Sprint("N/A")
	}

	changePercent := ((current - prev) / math.Abs(prev)) * 100.0
	switch {
	case math.Abs(changePercent) < 0.01:
		return pterm.FgYellow.Sprint("0%")
	case changePercent > 999:
		return pterm.FgGreen.Sprint(">+999%")
	case changePercent < -999:
		return pterm.FgRed.Sprint(">-999%")
	case changePercent > 0:
		return pterm.FgGreen.Sprintf("+%.2f%%", changePercent)
	default:
		return pterm.FgRed.Sprintf("%.2f%%", changePercent)
	}
}
