// Command report generates the posting engine error analysis workbook
// for project ZFI_SDT: an Error Analysis sheet with per-message-class
// root cause and solution columns, and a Summary sheet with severity
// totals and a recommended resolution order.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"sap-agent/internal/infrastructure/report"
)

type errorEntry struct {
	MsgClass  string
	MsgNo     string
	Count     string
	Text      string
	Severity  report.Severity
	RootCause string
	Solution  string
	Reference string
}

var errors = []errorEntry{
	{
		MsgClass: "NR",
		MsgNo:    "751",
		Count:    "9999+",
		Text:     "Interval does not exist for object (Number range missing)",
		Severity: report.SeverityHigh,
		RootCause: "The document type used in target posting refers to a number range interval that does not exist " +
			"or is not maintained in the target system (MWA client 100). With 9999+ occurrences this is the most " +
			"widespread error and likely blocks the majority of worklist items from being posted.",
		Solution: "1. Identify which number range objects are missing: check the error details for the specific object name (e.g., FBNR for FI documents).\n" +
			"2. Go to the target system and maintain the number range in customizing (e.g., FBN1 for FI document numbers, or SNRO for general number ranges).\n" +
			"3. Ensure both the number range NUMBER and the FROM/TO interval are maintained.\n" +
			"4. After fixing, rebuild transfer list and re-simulate affected worklist items.",
		Reference: "PECON FAQ #35\nSNRO / FBN1 in target system",
	},
	{
		MsgClass: "CNV_PE",
		MsgNo:    "451",
		Count:    "2328",
		Text:     "Transformation rule ended with error (see long text)",
		Severity: report.SeverityHigh,
		RootCause: "One or more transformation rules (TRules) failed during the Build Transfer List step. Common causes:\n" +
			"- Currency settings not read yet (WAERS rule)\n" +
			"- Company code transferred does not exist in target\n" +
			"- TRule runtime not generated\n" +
			"- Missing data in source system for the transformation.",
		Solution: "1. Check the long text of the error for each affected worklist item in the Worklist Monitor to identify which specific TRule failed.\n" +
			"2. If currency-related (_PE_FI_WAERS): Perform \"Read Customizing\" at area level in CNV_PE_PROJ -> Expert tab, with option \"overwrite\".\n" +
			"3. If TRule runtime not generated: Go to CNV_PE_PROJ -> Area -> Execution Rule -> Transfer Method -> Transformation, find the failing TRule, activate it. Or run report CNV_PE_SUPPORT_PROJ_GEN_TRULES.\n" +
			"4. Rebuild transfer list after fixing.",
		Reference: "PECON FAQ #3 (CNV_PE451)\nCNV_PE_SUPPORT_PROJ_GEN_TRULES",
	},
	{
		MsgClass: "CNV_OT_CX",
		MsgNo:    "000",
		Count:    "1746",
		Text:     "Generic exception message (&V1 &V2 &V3 &V4)",
		Severity: report.SeverityHigh,
		RootCause: "This is a generic exception catch-all message class. The actual error text is in the variable fields " +
			"(&V1-&V4). This typically indicates an unhandled exception during processing - could be ABAP dump, RFC " +
			"error, authorization issue, or data inconsistency in the target system.",
		Solution: "1. Click on individual error entries in the Error Monitor to see the actual error text (the &V1-&V4 variables will be filled with specifics).\n" +
			"2. Check ST22 (ABAP dumps) in both the Control System and Target System for related dumps.\n" +
			"3. Check SM21 (system log) for additional error details.\n" +
			"4. If RFC-related: verify RFC destinations in SM59 and check RFC user authorizations.\n" +
			"5. After identifying root cause, fix and re-generate if needed, then rebuild and re-process.",
		Reference: "Check ST22 dumps in target\nSM21 system log",
	},
	{
		MsgClass: "F5A",
		MsgNo:    "002",
		Count:    "86",
		Text:     "Vendor account is flagged for deletion",
		Severity: report.SeverityMedium,
		RootCause: "The vendor master record in the target system (MWA) has a deletion flag set. SAP does not allow " +
			"posting to accounts marked for deletion. This is a master data issue in the target system.",
		Solution: "1. Identify the affected vendor accounts from the error details.\n" +
			"2. In target system, use XK02/FK02 to remove the deletion flag from the vendor master (General Data -> Status tab or Company Code data).\n" +
			"3. Alternatively, if deletion is intentional, add a Skip Rule or WL1 Modification Rule to exclude these vendors from migration.\n" +
			"4. Re-process affected worklist items after master data correction.",
		Reference: "XK02/FK02 -> Remove deletion flag\nOr implement Skip Rule",
	},
	{
		MsgClass: "CNV_PE",
		MsgNo:    "589",
		Count:    "54",
		Text:     "Error executing transfer list modification rule",
		Severity: report.SeverityMedium,
		RootCause: "The WL2 Transfer List Modification Rule (exit class) encountered an error during execution. This is " +
			"custom ABAP code that modifies the transfer list before posting. The error could be in the ABAP logic " +
			"itself, missing data, or an incorrect class type assignment.",
		Solution: "1. Debug the WL2MOD exit class: set breakpoint in the modification rule class and trace through with a failing worklist item.\n" +
			"2. Ensure the exit class inherits from /SLO/CL_PECON_GEN_MAP (see FAQ #12).\n" +
			"3. Check that all required data is available in the transfer list structure.\n" +
			"4. Review the buffer logic if using general buffer pattern for exit classes.\n" +
			"5. After fixing the ABAP code, regenerate and rebuild transfer list.",
		Reference: "PECON FAQ #12\nCNV_PE_PROJ -> Transfer Method -> Exits",
	},
	{
		MsgClass: "CNV_PE",
		MsgNo:    "205",
		Count:    "51",
		Text:     "Exception in processing / Reference document not yet posted",
		Severity: report.SeverityMedium,
		RootCause: "The worklist item references another document (via REBZG field) that has not yet been posted in the " +
			"target system. This is a dependency issue - the reference document must be posted first before the " +
			"dependent document can be created.",
		Solution: "1. Identify which reference documents (REBZG) are required by checking error details.\n" +
			"2. Ensure reference documents are processed and posted BEFORE dependent items. Use the GROUP_ID configuration or Plan Jobs to control processing order.\n" +
			"3. If the reference document was already posted, run \"Result Link Update\" to propagate the new document number, then rebuild and re-process.\n" +
			"4. Consider using Predecessor Areas if the reference documents are in a different migration object.",
		Reference: "PECON FAQ #6 (CNV_PE205)\nGROUP_ID config parameter",
	},
	{
		MsgClass: "F5",
		MsgNo:    "351",
		Count:    "17",
		Text:     "Account is blocked for posting",
		Severity: report.SeverityMedium,
		RootCause: "The G/L account or vendor/customer account in the target system is blocked for posting. This can be " +
			"set at company code level in the master data.",
		Solution: "1. Identify the blocked accounts from the error details.\n" +
			"2. In target system, check the account master:\n" +
			"   - For G/L: FS00 -> Company Code Data -> check \"Blocked for posting\" flag\n" +
			"   - For Vendors: FK02/XK02 -> Company Code data -> Accounting info\n" +
			"3. Remove the posting block if appropriate, or update the Account List to map to a different (unblocked) account.\n" +
			"4. Re-process affected worklist items.",
		Reference: "FS00 / FK02 / XK02\nAccount List mapping",
	},
	{
		MsgClass: "F5A",
		MsgNo:    "003",
		Count:    "14",
		Text:     "G/L account is flagged for deletion",
		Severity: report.SeverityMedium,
		RootCause: "The G/L account in the target system has a deletion flag. SAP blocks postings to accounts marked " +
			"for deletion.",
		Solution: "1. Identify affected G/L accounts from the error details.\n" +
			"2. In target system, use FS00 to check and remove the deletion flag from the G/L account master.\n" +
			"3. Alternatively, update the Account List to map source accounts to different target G/L accounts that are active.\n" +
			"4. Re-process affected worklist items after correction.",
		Reference: "FS00 -> Remove deletion flag\nAccount List remapping",
	},
	{
		MsgClass: "F5",
		MsgNo:    "026",
		Count:    "10",
		Text:     "Vendor has no bank details with bank type",
		Severity: report.SeverityLow,
		RootCause: "The vendor master in the target system is missing bank details for the expected bank type. This " +
			"occurs when open items include payment-relevant data that require bank details.",
		Solution: "1. Identify the affected vendors and required bank types from error details.\n" +
			"2. In target system, use FK02/XK02 -> Payment Transactions tab to maintain the required bank details for the vendor.\n" +
			"3. If bank details migration is handled separately, ensure it completes before running PE transfer.\n" +
			"4. Re-process affected worklist items after master data update.",
		Reference: "FK02/XK02 -> Payment Transactions\nBank master data",
	},
	{
		MsgClass: "/SLO/PECON",
		MsgNo:    "102",
		Count:    "5",
		Text:     "Vendor master withholding tax data not maintained",
		Severity: report.SeverityLow,
		RootCause: "The vendor master record in the target system does not have withholding tax (WHT) data maintained, " +
			"but the open item being migrated contains withholding tax information.",
		Solution: "1. Identify affected vendors from the error details.\n" +
			"2. In target system, use FK02/XK02 -> Withholding Tax tab to maintain the required withholding tax types and codes.\n" +
			"3. Verify that WHT types in the Account List / transformation match what is configured in target system customizing (OBWW/OBWI).\n" +
			"4. See also \"Special Topic Withholding Tax Handling\" section in the PECON User Guide for ACDOCGEN_FI_AP_OI_RCV.\n" +
			"5. Re-process after WHT master data is corrected.",
		Reference: "PECON User Guide 7.1.2.1.2\nFK02 -> Withholding Tax tab\nOBWW/OBWI customizing",
	},
}

type summaryRow struct {
	Severity      report.Severity
	ErrorCount    int
	AffectedItems string
	Action        string
}

var summary = []summaryRow{
	{report.SeverityHigh, 3, "9999+ / 2328 / 1746",
		"Fix number ranges in target, investigate TRule failures and generic exceptions. These 3 errors account for the vast majority of failures."},
	{report.SeverityMedium, 5, "86 / 54 / 51 / 17 / 14",
		"Master data corrections (deletion flags, posting blocks), fix WL2MOD exit, resolve document dependencies."},
	{report.SeverityLow, 2, "10 / 5",
		"Maintain vendor bank details and withholding tax data in target master records."},
}

type priorityRow struct {
	Priority string
	Error    string
	Action   string
}

var priorities = []priorityRow{
	{"1 (Critical)", "NR 751 - Number range intervals", "Blocks 9999+ items. Quick fix in target customizing (FBN1/SNRO)."},
	{"2 (Critical)", "CNV_PE 451 - TRule errors", "Blocks 2328 items. Read Customizing + regenerate TRules."},
	{"3 (Investigate)", "CNV_OT_CX 000 - Generic exceptions", "Blocks 1746 items. Check ST22/SM21 for actual root cause."},
	{"4 (Master Data)", "F5A 002/003, F5 351 - Deletion flags & blocks", "Fix in target vendor/GL masters (XK02, FS00)."},
	{"5 (Dependencies)", "CNV_PE 205 - Reference doc not posted", "Control processing order, post reference docs first."},
	{"6 (Code Fix)", "CNV_PE 589 - WL2MOD exit error", "Debug and fix custom ABAP exit class."},
	{"7 (Master Data)", "F5 026, /SLO/PECON 102 - Bank & WHT data", "Maintain vendor bank details and WHT data."},
}

func main() {
	output := flag.String("o", "PE_Error_Analysis_ZFI_SDT.xlsx", "output workbook path")
	flag.Parse()

	if err := generate(*output); err != nil {
		fmt.Fprintf(os.Stderr, "report: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Workbook saved to: %s\n", *output)
	fmt.Printf("Sheets: Error Analysis (%d errors), Summary (with priority order)\n", len(errors))
}

func generate(path string) error {
	b, err := report.NewBuilder()
	if err != nil {
		return err
	}

	if err := buildErrorSheet(b); err != nil {
		return fmt.Errorf("error analysis sheet: %w", err)
	}
	if err := buildSummarySheet(b); err != nil {
		return fmt.Errorf("summary sheet: %w", err)
	}
	return b.Save(path)
}

func buildErrorSheet(b *report.Builder) error {
	const sheet = "Error Analysis"
	if err := b.Sheet(sheet); err != nil {
		return err
	}

	if err := b.AddTitle(sheet, "Posting Engine Error Monitor Analysis - Project ZFI_SDT", "I1"); err != nil {
		return err
	}
	subtitle := fmt.Sprintf(
		"System: MWA / Client: 100 / Area: ZAP_OI (Vendor Open Items) / Scenario: Receiver Processing / Generated: %s",
		time.Now().Format("2006-01-02 15:04"))
	if err := b.AddSubtitle(sheet, subtitle, "I2"); err != nil {
		return err
	}

	if err := b.AddHeaders(sheet, 4, []report.Column{
		{Letter: "A", Title: "No.", Width: 5},
		{Letter: "B", Title: "Message Class", Width: 15},
		{Letter: "C", Title: "Message Number", Width: 15},
		{Letter: "D", Title: "Count (RCV)", Width: 13},
		{Letter: "E", Title: "Error Message", Width: 45},
		{Letter: "F", Title: "Severity", Width: 12},
		{Letter: "G", Title: "Root Cause Analysis", Width: 50},
		{Letter: "H", Title: "Proposed Solution", Width: 55},
		{Letter: "I", Title: "Reference / SAP Note", Width: 25},
	}); err != nil {
		return err
	}

	for i, e := range errors {
		row := i + 5
		if err := b.AddRow(sheet, row, map[string]interface{}{
			"A": i + 1,
			"B": e.MsgClass,
			"C": e.MsgNo,
			"D": e.Count,
			"E": e.Text,
			"F": string(e.Severity),
			"G": e.RootCause,
			"H": e.Solution,
			"I": e.Reference,
		}); err != nil {
			return err
		}
		if err := b.MarkSeverity(sheet, fmt.Sprintf("F%d", row), e.Severity); err != nil {
			return err
		}
		if err := b.SetRowHeight(sheet, row, 100); err != nil {
			return err
		}
	}

	if err := b.FreezeTopRows(sheet, 4); err != nil {
		return err
	}
	return b.AutoFilter(sheet, fmt.Sprintf("A4:I%d", 4+len(errors)))
}

func buildSummarySheet(b *report.Builder) error {
	const sheet = "Summary"
	if err := b.Sheet(sheet); err != nil {
		return err
	}

	if err := b.AddTitle(sheet, "Error Summary - ZFI_SDT / ZAP_OI (Vendor Open Items)", "D1"); err != nil {
		return err
	}

	if err := b.AddHeaders(sheet, 3, []report.Column{
		{Letter: "A", Title: "Severity", Width: 12},
		{Letter: "B", Title: "Error Count", Width: 15},
		{Letter: "C", Title: "Affected Items", Width: 18},
		{Letter: "D", Title: "Action Required", Width: 60},
	}); err != nil {
		return err
	}

	for i, s := range summary {
		row := i + 4
		if err := b.AddRow(sheet, row, map[string]interface{}{
			"A": string(s.Severity),
			"B": s.ErrorCount,
			"C": s.AffectedItems,
			"D": s.Action,
		}); err != nil {
			return err
		}
		if err := b.MarkSeverity(sheet, fmt.Sprintf("A%d", row), s.Severity); err != nil {
			return err
		}
		if err := b.SetRowHeight(sheet, row, 40); err != nil {
			return err
		}
	}

	f := b.File()
	if err := f.MergeCell(sheet, "A8", "C8"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A8", "Recommended Resolution Order"); err != nil {
		return err
	}

	if err := b.AddHeaders(sheet, 9, []report.Column{
		{Letter: "A", Title: "Priority", Width: 15},
		{Letter: "B", Title: "Error", Width: 40},
		{Letter: "C", Title: "Action", Width: 60},
	}); err != nil {
		return err
	}

	for i, p := range priorities {
		row := i + 10
		if err := b.AddRow(sheet, row, map[string]interface{}{
			"A": p.Priority,
			"B": p.Error,
			"C": p.Action,
		}); err != nil {
			return err
		}
		if err := b.SetRowHeight(sheet, row, 30); err != nil {
			return err
		}
	}

	return b.FreezeTopRows(sheet, 2)
}
