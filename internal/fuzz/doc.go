// Package fuzztests houses Go fuzz harnesses that exercise the check
// pipeline (source -> lexer -> rules). Its goal is to smoke test robustness
// and guard against panics or broken token streams on arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер и все правила.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/sniff,
// internal/sniffs, internal/diag, internal/testkit.

package fuzztests
