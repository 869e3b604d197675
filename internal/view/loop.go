package view

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const helpText = `Команды:
  tasks            показать список задач
  users            показать список пользователей
  add <текст>      создать задачу (в режиме задач)
  add              создать пользователя (в режиме пользователей)
  toggle <номер>   переключить статус задачи
  refresh          перезагрузить активный список
  quit             выход`

// Run читает команды построчно и маршрутизирует их в операции
// синхронизаторов. Каждая операция уходит в свою горутину: количество
// одновременных запросов не ограничивается, ответы применяются в порядке
// прихода.
func (v *View) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(v.out, helpText)
	v.Render()

	for {
		fmt.Fprint(v.out, "> ")

		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		command, arg := splitCommand(line)

		switch command {
		case "tasks", "t":
			v.SetMode(ModeTasks)
		case "users", "u":
			v.SetMode(ModeUsers)
		case "add":
			v.handleAdd(ctx, scanner, arg)
		case "toggle":
			go v.SubmitToggle(ctx, arg)
		case "refresh", "r":
			go v.Refresh(ctx)
		case "help", "h":
			fmt.Fprintln(v.out, helpText)
		case "quit", "q", "exit":
			return nil
		default:
			v.notice("Неизвестная команда, наберите help")
		}
	}
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

// handleAdd в режиме задач отправляет описание из аргумента команды,
// в режиме пользователей заполняет три поля формы с клавиатуры
func (v *View) handleAdd(ctx context.Context, scanner *bufio.Scanner, arg string) {
	if v.Mode() == ModeTasks {
		go v.SubmitTask(ctx, arg)
		return
	}

	username := v.prompt(scanner, "Имя пользователя")
	email := v.prompt(scanner, "Почта")
	password := v.prompt(scanner, "Пароль")

	go v.SubmitUser(ctx, username, email, password)
}

func (v *View) prompt(scanner *bufio.Scanner, label string) string {
	fmt.Fprintf(v.out, "%s: ", label)

	if !scanner.Scan() {
		return ""
	}

	return scanner.Text()
}
