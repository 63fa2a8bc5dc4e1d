// Package fuzztests houses Go fuzz harnesses for the lexer. Its goal is to
// smoke test robustness and the token-stream invariants on arbitrary input.
//
// Назначение: прогонять байты через FileSet, оба прохода лексера и
// testkit-инварианты.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/diag,
// internal/testkit.
package fuzztests
