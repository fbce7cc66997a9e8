package main

import (
	"fmt"
	"strconv"
	"strings"

	"healthcare-clinic/internal/api"
	"healthcare-clinic/internal/client"
	"healthcare-clinic/internal/model"

	"github.com/spf13/cobra"
)

func newMedicinesCmd(o *options) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "medicines",
		Short: "列出藥品",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.open()
			if err != nil {
				return err
			}
			meds, live := c.SearchMedicines(cmd.Context(), search)
			out := cmd.OutOrStdout()
			if !live {
				fmt.Fprintln(out, "(offline catalog)")
			}
			if len(meds) == 0 {
				fmt.Fprintln(out, "No medicines found")
				return nil
			}
			for _, m := range meds {
				fmt.Fprintf(out, "%3d  %s %-22s %-12s $%7.2f  stock %d\n", m.ID, m.Image, m.Name, m.Category, m.Price, m.Stock)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "依名稱或分類篩選")
	return cmd
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid medicine id %q", s)
	}
	return id, nil
}

func printCart(cmd *cobra.Command, c *client.Client) {
	out := cmd.OutOrStdout()
	items := c.Cart()
	if len(items) == 0 {
		fmt.Fprintln(out, "Your cart is empty")
		return
	}
	for _, it := range items {
		fmt.Fprintf(out, "%3d  %-22s %3d x $%.2f = $%.2f\n", it.ID, it.Name, it.Quantity, it.Price, it.Price*float64(it.Quantity))
	}
	fmt.Fprintf(out, "items: %d  total: $%.2f\n", c.CartCount(), c.CartTotal())
}

func newCartCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "檢視或修改購物車",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.open()
			if err != nil {
				return err
			}
			printCart(cmd, c)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <id>",
		Short: "加入一件藥品",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := o.open()
			if err != nil {
				return err
			}
			c.Medicines(cmd.Context())
			if err := c.AddToCart(id); err != nil {
				return err
			}
			printCart(cmd, c)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "update <id> <delta>",
		Short: "調整數量，結果為 0 時移除",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid delta %q", args[1])
			}
			c, err := o.open()
			if err != nil {
				return err
			}
			c.Medicines(cmd.Context())
			if err := c.ChangeQuantity(id, delta); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), err)
			}
			printCart(cmd, c)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <id>",
		Short: "移除品項",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := o.open()
			if err != nil {
				return err
			}
			if err := c.RemoveFromCart(id); err != nil {
				return err
			}
			printCart(cmd, c)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "清空購物車",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.open()
			if err != nil {
				return err
			}
			return c.ClearCart()
		},
	})
	return cmd
}

func newCheckoutCmd(o *options) *cobra.Command {
	var in client.CheckoutInput
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "以購物車內容下單",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.open()
			if err != nil {
				return err
			}
			r, err := c.Checkout(cmd.Context(), in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if r.Offline {
				fmt.Fprintln(out, "Order saved (offline).")
			}
			if r.Status == model.PaymentPending {
				fmt.Fprintf(out, "Order placed successfully! Transaction ID: %s\nYou will pay cash when the order is delivered.\n", r.TransactionID)
			} else {
				fmt.Fprintf(out, "Payment successful! Transaction ID: %s\n", r.TransactionID)
			}
			fmt.Fprintf(out, "Total: $%.2f\n", r.Total)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.CustomerName, "name", "", "customer name")
	f.StringVar(&in.CustomerEmail, "email", "", "customer email")
	f.StringVar(&in.CustomerPhone, "phone", "", "customer phone")
	f.StringVar(&in.DeliveryAddress, "address", "", "delivery address")
	f.StringVar(&in.PaymentMethod, "method", "cash_on_delivery", "payment method")
	f.StringVar(&in.CardNumber, "card", "", "card number")
	f.StringVar(&in.ExpiryDate, "expiry", "", "card expiry MM/YY")
	f.StringVar(&in.CVV, "cvv", "", "card CVV")
	for _, name := range []string{"name", "email", "phone", "address"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newConsultCmd(o *options) *cobra.Command {
	var req api.CreateConsultRequest
	cmd := &cobra.Command{
		Use:   "consult",
		Short: "送出諮詢",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.open()
			if err != nil {
				return err
			}
			sub, err := c.SubmitConsult(cmd.Context(), req)
			if err != nil {
				return err
			}
			if sub.Offline {
				fmt.Fprintln(cmd.OutOrStdout(), "Consultation saved (offline). It will appear on the dashboard.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Consultation request submitted! We will contact you shortly.")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.Name, "name", "", "patient name")
	f.StringVar(&req.Email, "email", "", "email")
	f.StringVar(&req.Phone, "phone", "", "phone")
	f.StringVar(&req.Specialty, "specialty", "", "specialty")
	f.StringVar(&req.Symptoms, "symptoms", "", "symptoms")
	for _, name := range []string{"name", "email", "phone", "specialty", "symptoms"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newAppointmentCmd(o *options) *cobra.Command {
	var req api.CreateAppointmentRequest
	cmd := &cobra.Command{
		Use:   "appointment",
		Short: "預約看診",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.open()
			if err != nil {
				return err
			}
			sub, err := c.BookAppointment(cmd.Context(), req)
			if err != nil {
				return err
			}
			if sub.Offline {
				fmt.Fprintln(cmd.OutOrStdout(), "Appointment saved (offline). It will appear on the dashboard.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Appointment booked successfully! We look forward to seeing you.")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.Name, "name", "", "patient name")
	f.StringVar(&req.Email, "email", "", "email")
	f.StringVar(&req.Phone, "phone", "", "phone")
	f.StringVar(&req.Doctor, "doctor", "", "doctor")
	f.StringVar(&req.Date, "date", "", "date YYYY-MM-DD")
	f.StringVar(&req.Time, "time", "", "time HH:MM")
	for _, name := range []string{"name", "email", "phone", "doctor", "date", "time"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newChatCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>",
		Short: "詢問健康問題",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.open()
			if err != nil {
				return err
			}
			reply, _ := c.Chat(cmd.Context(), []api.ChatMessage{{Role: "user", Content: strings.Join(args, " ")}})
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}
}

func newSyncCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "重送離線暫存的紀錄",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.open()
			if err != nil {
				return err
			}
			r, err := c.Sync(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "synced consults=%d appointments=%d payments=%d, remaining=%d\n",
				r.Consults, r.Appointments, r.Payments, r.Remaining)
			return nil
		},
	}
}

func newResetCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-api",
		Short: "清除快取的 API 位址",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.open()
			if err != nil {
				return err
			}
			return c.ResetBaseURL()
		},
	}
}
